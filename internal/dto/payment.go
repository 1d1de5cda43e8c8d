package dto

// ── Payment DTOs ──

// CreatePaymentRequest records direct income. The resulting payment is born
// paid on the given date; student_id is optional and, when present, fills the
// name/group/course snapshot from the student record.
type CreatePaymentRequest struct {
	StudentID *int64 `json:"student_id" binding:"omitempty,min=1"`
	Amount    int64  `json:"amount"     binding:"required,min=1"`
	Date      string `json:"date"       binding:"required,datetime=2006-01-02"`
	Course    string `json:"course"     binding:"omitempty,max=100"`
	Group     string `json:"group"      binding:"omitempty,max=100"`
	Comment   string `json:"comment"    binding:"omitempty,max=2000"`
}

// UpdatePaymentRequest is the generic field-level edit. It can set status
// directly, bypassing the pay transition on purpose (the edit form allows
// it); nil fields are left unchanged.
type UpdatePaymentRequest struct {
	Amount          *int64  `json:"amount"            binding:"omitempty,min=1"`
	DueDate         *string `json:"due_date"          binding:"omitempty,datetime=2006-01-02"`
	NextPaymentDate *string `json:"next_payment_date" binding:"omitempty,datetime=2006-01-02"`
	Course          *string `json:"course"            binding:"omitempty,max=100"`
	Group           *string `json:"group"             binding:"omitempty,max=100"`
	Status          *string `json:"status"            binding:"omitempty,oneof=unpaid paid"`
	Comment         *string `json:"comment"           binding:"omitempty,max=2000"`
}

// PayPaymentRequest settles an unpaid payment. Date becomes paid_at; the due
// date is retained. Amount and comment may be adjusted at pay time.
type PayPaymentRequest struct {
	Amount  *int64 `json:"amount"  binding:"omitempty,min=1"`
	Date    string `json:"date"    binding:"required,datetime=2006-01-02"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

// PaymentListRequest selects a payment view.
type PaymentListRequest struct {
	View string `form:"view" binding:"omitempty,oneof=all overdue upcoming paid"`
}

// PaymentResponse is the payment payload returned by the API. DaysUntilDue is
// computed against today and only meaningful for unpaid payments.
type PaymentResponse struct {
	ID              int64  `json:"id"`
	StudentID       *int64 `json:"student_id,omitempty"`
	StudentName     string `json:"student_name"`
	Course          string `json:"course"`
	Group           string `json:"group"`
	Amount          int64  `json:"amount"`
	DueDate         string `json:"due_date"`
	PaidAt          string `json:"paid_at,omitempty"`
	NextPaymentDate string `json:"next_payment_date,omitempty"`
	Status          string `json:"status"`
	Comment         string `json:"comment,omitempty"`
	DaysUntilDue    int    `json:"days_until_due"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// PaymentBucketStats is one classification bucket of the stats card row.
type PaymentBucketStats struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"`
}

// PaymentStatsResponse aggregates the payments screen statistics.
type PaymentStatsResponse struct {
	Overdue  PaymentBucketStats `json:"overdue"`
	Upcoming PaymentBucketStats `json:"upcoming"`
	Paid     PaymentBucketStats `json:"paid"`
}

// ReconcileResponse reports an explicit orphan-cleanup run.
type ReconcileResponse struct {
	Removed int `json:"removed"`
}

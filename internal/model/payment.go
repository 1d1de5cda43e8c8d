package model

// PaymentStatus is the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Valid reports whether the status is one of the closed set.
func (s PaymentStatus) Valid() bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

// Payment is a ledger entry; maps to payments.
//
// StudentID links to the owning student; it is nullable because direct income
// can be recorded without one. StudentName is a display snapshot taken at
// creation, never used for matching. DueDate is always set; PaidAt is set
// when the payment transitions to paid, so the original due date survives
// settlement.
type Payment struct {
	ID              int64         `gorm:"primaryKey;autoIncrement"   json:"id"`
	StudentID       *int64        `gorm:"index"                      json:"student_id,omitempty"`
	StudentName     string        `gorm:"type:varchar(200);not null" json:"student_name"`
	Course          string        `gorm:"type:varchar(100)"          json:"course"`
	Group           string        `gorm:"type:varchar(100)"          json:"group"`
	Amount          int64         `gorm:"not null"                   json:"amount"`
	DueDate         Date          `gorm:"type:date;not null"         json:"due_date"`
	PaidAt          *Date         `gorm:"type:date"                  json:"paid_at,omitempty"`
	NextPaymentDate *Date         `gorm:"type:date"                  json:"next_payment_date,omitempty"`
	Status          PaymentStatus `gorm:"type:varchar(20);not null;default:'unpaid'" json:"status"`
	Comment         string        `gorm:"type:text"                  json:"comment,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Payment) TableName() string { return "payments" }

// EffectiveDate is the date a paid payment counts toward: PaidAt when known,
// DueDate otherwise.
func (p *Payment) EffectiveDate() Date {
	if p.PaidAt != nil {
		return *p.PaidAt
	}
	return p.DueDate
}

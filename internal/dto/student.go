package dto

// ── Student DTOs ──

// CreateStudentRequest enrolls a student. A payment_amount above zero issues
// the initial unpaid debt record due on join_date.
type CreateStudentRequest struct {
	FirstName     string `json:"first_name"     binding:"required,min=1,max=100"`
	LastName      string `json:"last_name"      binding:"required,min=1,max=100"`
	Phone         string `json:"phone"          binding:"omitempty,max=30"`
	Age           int    `json:"age"            binding:"omitempty,min=0,max=120"`
	Source        string `json:"source"         binding:"omitempty,max=50"`
	Gender        string `json:"gender"         binding:"omitempty,max=20"`
	JoinDate      string `json:"join_date"      binding:"required,datetime=2006-01-02"`
	ParentName    string `json:"parent_name"    binding:"omitempty,max=200"`
	ParentPhone   string `json:"parent_phone"   binding:"omitempty,max=30"`
	Group         string `json:"group"          binding:"omitempty,max=100"`
	PaymentAmount int64  `json:"payment_amount" binding:"omitempty,min=0"`
	Comment       string `json:"comment"        binding:"omitempty,max=2000"`
}

// UpdateStudentRequest edits a student. Nil fields are left unchanged.
// Editing never reissues debt and never rewrites existing payment snapshots.
type UpdateStudentRequest struct {
	FirstName     *string `json:"first_name"     binding:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name"      binding:"omitempty,min=1,max=100"`
	Phone         *string `json:"phone"          binding:"omitempty,max=30"`
	Age           *int    `json:"age"            binding:"omitempty,min=0,max=120"`
	Source        *string `json:"source"         binding:"omitempty,max=50"`
	Gender        *string `json:"gender"         binding:"omitempty,max=20"`
	JoinDate      *string `json:"join_date"      binding:"omitempty,datetime=2006-01-02"`
	ParentName    *string `json:"parent_name"    binding:"omitempty,max=200"`
	ParentPhone   *string `json:"parent_phone"   binding:"omitempty,max=30"`
	Group         *string `json:"group"          binding:"omitempty,max=100"`
	PaymentAmount *int64  `json:"payment_amount" binding:"omitempty,min=0"`
	Comment       *string `json:"comment"        binding:"omitempty,max=2000"`
}

// StudentListRequest filters the student list.
type StudentListRequest struct {
	Search string `form:"search"`
}

// StudentResponse is the student payload returned by the API.
type StudentResponse struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	Age           int    `json:"age"`
	Source        string `json:"source"`
	Gender        string `json:"gender"`
	JoinDate      string `json:"join_date"`
	ParentName    string `json:"parent_name"`
	ParentPhone   string `json:"parent_phone"`
	Group         string `json:"group"`
	PaymentAmount int64  `json:"payment_amount"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

package dto

// ── Teacher DTOs ──

// CreateTeacherRequest registers a teacher.
type CreateTeacherRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=100"`
	Phone     string `json:"phone"      binding:"omitempty,max=30"`
	Age       int    `json:"age"        binding:"omitempty,min=0,max=120"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
}

// UpdateTeacherRequest edits a teacher. Nil fields are left unchanged.
type UpdateTeacherRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone"      binding:"omitempty,max=30"`
	Age       *int    `json:"age"        binding:"omitempty,min=0,max=120"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

// TeacherResponse is the teacher payload returned by the API.
type TeacherResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Age       int    `json:"age"`
	StartDate string `json:"start_date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

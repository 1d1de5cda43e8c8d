package dto

// ── Group DTOs ──

// CreateGroupRequest creates a study group. New groups start active with a
// zero student count.
type CreateGroupRequest struct {
	Name   string `json:"name"   binding:"required,min=1,max=100"`
	Course string `json:"course" binding:"required,min=1,max=100"`
	Days   string `json:"days"   binding:"omitempty,max=50"`
	Time   string `json:"time"   binding:"omitempty,max=50"`
}

// UpdateGroupRequest updates a study group. Nil fields are left unchanged.
type UpdateGroupRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=1,max=100"`
	Course       *string `json:"course"        binding:"omitempty,min=1,max=100"`
	Days         *string `json:"days"          binding:"omitempty,max=50"`
	Time         *string `json:"time"          binding:"omitempty,max=50"`
	StudentCount *int    `json:"student_count" binding:"omitempty,min=0"`
	Status       *string `json:"status"        binding:"omitempty,oneof=active archived"`
}

// GroupResponse is the group payload returned by the API.
type GroupResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Course       string `json:"course"`
	Days         string `json:"days"`
	Time         string `json:"time"`
	StudentCount int    `json:"student_count"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

package model

// GroupStatus is the lifecycle state of a study group.
type GroupStatus string

const (
	GroupActive   GroupStatus = "active"
	GroupArchived GroupStatus = "archived"
)

// Valid reports whether the status is one of the closed set.
func (s GroupStatus) Valid() bool {
	return s == GroupActive || s == GroupArchived
}

// Group is a study group; maps to groups.
//
// StudentCount is informational only: it is set by callers and is not kept
// consistent with actual student membership.
type Group struct {
	ID           int64       `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name         string      `gorm:"type:varchar(100);not null;unique" json:"name"`
	Course       string      `gorm:"type:varchar(100);not null"        json:"course"`
	Days         string      `gorm:"type:varchar(50)"                  json:"days"` // e.g. "Mon-Wed-Fri"
	Time         string      `gorm:"type:varchar(50)"                  json:"time"` // e.g. "14:00-16:00"
	StudentCount int         `gorm:"not null;default:0"                json:"student_count"`
	Status       GroupStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	BaseModel
}

// TableName sets the table name.
func (Group) TableName() string { return "groups" }

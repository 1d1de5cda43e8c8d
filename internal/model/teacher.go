package model

// Teacher is a staff member; maps to teachers. Teachers carry no relation to
// groups or students in this data model.
type Teacher struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone     string `gorm:"type:varchar(30)"           json:"phone"`
	Age       int    `gorm:"not null;default:0"         json:"age"`
	StartDate Date   `gorm:"type:date;not null"         json:"start_date"`
	BaseModel
}

// TableName sets the table name.
func (Teacher) TableName() string { return "teachers" }

package model

// Student is an enrolled learner; maps to students.
//
// Group is a name reference, not a foreign key: the original data model links
// students to groups by display name only. PaymentAmount is the recurring
// monthly due in UZS.
type Student struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	FirstName     string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone         string `gorm:"type:varchar(30)"           json:"phone"`
	Age           int    `gorm:"not null;default:0"         json:"age"`
	Source        string `gorm:"type:varchar(50)"           json:"source"`
	Gender        string `gorm:"type:varchar(20)"           json:"gender"`
	JoinDate      Date   `gorm:"type:date;not null"         json:"join_date"`
	ParentName    string `gorm:"type:varchar(200)"          json:"parent_name"`
	ParentPhone   string `gorm:"type:varchar(30)"           json:"parent_phone"`
	Group         string `gorm:"type:varchar(100)"          json:"group"`
	PaymentAmount int64  `gorm:"not null;default:0"         json:"payment_amount"`
	Comment       string `gorm:"type:text"                  json:"comment,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }

// FullName is the display name snapshotted onto payment records.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

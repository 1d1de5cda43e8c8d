package model

// ExpenseCategory classifies an expense record.
type ExpenseCategory string

const (
	ExpenseRent    ExpenseCategory = "rent"
	ExpenseSalary  ExpenseCategory = "salary"
	ExpenseUtility ExpenseCategory = "utility"
	ExpenseOffice  ExpenseCategory = "office"
	ExpenseOther   ExpenseCategory = "other"
)

// Valid reports whether the category is one of the closed set.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseRent, ExpenseSalary, ExpenseUtility, ExpenseOffice, ExpenseOther:
		return true
	}
	return false
}

// Expense is an outgoing cost record; maps to expenses. Expenses are
// independent of all other entities.
type Expense struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"   json:"id"`
	Title    string          `gorm:"type:varchar(200);not null" json:"title"`
	Amount   int64           `gorm:"not null"                   json:"amount"`
	Date     Date            `gorm:"type:date;not null"         json:"date"`
	Category ExpenseCategory `gorm:"type:varchar(20);not null;default:'other'" json:"category"`
	Comment  string          `gorm:"type:text"                  json:"comment,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Expense) TableName() string { return "expenses" }

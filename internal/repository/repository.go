package repository

import "gorm.io/gorm"

// Repository aggregates one data-access interface per collection. The record
// store offers no cross-collection constraints and no server-side filtering:
// each interface is the narrow list/get/create/update/delete surface, and all
// status or date filtering happens in the service layer after a full list.
type Repository struct {
	Group   GroupRepository
	Student StudentRepository
	Teacher TeacherRepository
	Payment PaymentRepository
	Expense ExpenseRepository
}

// NewRepository builds the aggregate over one gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Group:   NewGroupRepo(db),
		Student: NewStudentRepo(db),
		Teacher: NewTeacherRepo(db),
		Payment: NewPaymentRepo(db),
		Expense: NewExpenseRepo(db),
	}
}

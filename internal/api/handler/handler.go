package handler

import "educrm/backend/internal/service"

// Handler is the aggregate entry for all HTTP handlers.
type Handler struct {
	Group   *GroupHandler
	Student *StudentHandler
	Teacher *TeacherHandler
	Payment *PaymentHandler
	Expense *ExpenseHandler
	Finance *FinanceHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Group:   NewGroupHandler(svc.Group),
		Student: NewStudentHandler(svc.Student),
		Teacher: NewTeacherHandler(svc.Teacher),
		Payment: NewPaymentHandler(svc.Payment),
		Expense: NewExpenseHandler(svc.Expense),
		Finance: NewFinanceHandler(svc.Finance),
	}
}

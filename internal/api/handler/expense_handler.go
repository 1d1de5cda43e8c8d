package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/service"
	"educrm/backend/pkg/response"
)

// ExpenseHandler serves the expense module endpoints.
type ExpenseHandler struct {
	expenseSvc service.ExpenseService
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(expenseSvc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseSvc: expenseSvc}
}

// ListExpenses handles GET /api/v1/expenses
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": expenses})
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	expense, err := h.expenseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleExpenseError(c, err)
		return
	}

	response.Created(c, expense)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	if err := h.expenseSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleExpenseError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleExpenseError maps expense business errors to API replies.
func (h *ExpenseHandler) handleExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExpenseNotFound):
		response.NotFound(c, 15001, "expense not found")
	default:
		response.InternalError(c)
	}
}

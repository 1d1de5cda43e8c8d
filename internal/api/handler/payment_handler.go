package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/service"
	"educrm/backend/pkg/response"
)

// PaymentHandler serves the payment ledger endpoints.
type PaymentHandler struct {
	paymentSvc service.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// ListPayments handles GET /api/v1/payments?view=all|overdue|upcoming|paid
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var req dto.PaymentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	payments, err := h.paymentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": payments})
}

// GetPaymentStats handles GET /api/v1/payments/stats
func (h *PaymentHandler) GetPaymentStats(c *gin.Context) {
	stats, err := h.paymentSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// GetPayment handles GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	payment, err := h.paymentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}

	response.OK(c, payment)
}

// CreatePayment handles POST /api/v1/payments
// Records direct income: the payment is created already paid.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	payment, err := h.paymentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}

	response.Created(c, payment)
}

// UpdatePayment handles PUT /api/v1/payments/:id
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	payment, err := h.paymentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}

	response.OK(c, payment)
}

// PayPayment handles POST /api/v1/payments/:id/pay
// Settles an unpaid payment on the given date.
func (h *PaymentHandler) PayPayment(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req dto.PayPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	payment, err := h.paymentSvc.Pay(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}

	response.OK(c, payment)
}

// DeletePayment handles DELETE /api/v1/payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	if err := h.paymentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePaymentError(c, err)
		return
	}

	response.OK(c, nil)
}

// ReconcilePayments handles POST /api/v1/payments/reconcile
// Removes unpaid payments whose student record no longer exists.
func (h *PaymentHandler) ReconcilePayments(c *gin.Context) {
	result, err := h.paymentSvc.Reconcile(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// handlePaymentError maps payment business errors to API replies.
func (h *PaymentHandler) handlePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		response.NotFound(c, 14001, "payment not found")
	case errors.Is(err, service.ErrPaymentAlreadyPaid):
		response.BadRequest(c, 14002, "payment already paid")
	default:
		response.InternalError(c)
	}
}

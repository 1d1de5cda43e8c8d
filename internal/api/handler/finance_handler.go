package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"educrm/backend/internal/service"
	"educrm/backend/pkg/response"
)

// FinanceHandler serves the derived-finance endpoints.
type FinanceHandler struct {
	financeSvc service.FinanceService
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(financeSvc service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeSvc: financeSvc}
}

// GetSummary handles GET /api/v1/finance/summary
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	summary, err := h.financeSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// ExportLedger handles GET /api/v1/finance/export
// Streams the ledger as an .xlsx download.
func (h *FinanceHandler) ExportLedger(c *gin.Context) {
	buf, filename, err := h.financeSvc.ExportLedger(c.Request.Context())
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// handleFinanceError maps finance business errors to API replies.
func (h *FinanceHandler) handleFinanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportEmptyLedger):
		response.BadRequest(c, 16001, "ledger is empty")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/service"
	"educrm/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock StudentService ──

type mockStudentService struct {
	createResult *dto.StudentResponse
	createErr    error
	getResult    *dto.StudentResponse
	getErr       error
	listResult   []dto.StudentResponse
	listErr      error
	updateResult *dto.StudentResponse
	updateErr    error
	deleteErr    error
}

func (m *mockStudentService) Create(_ context.Context, _ *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockStudentService) GetByID(_ context.Context, _ int64) (*dto.StudentResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockStudentService) List(_ context.Context, _ *dto.StudentListRequest) ([]dto.StudentResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockStudentService) Update(_ context.Context, _ int64, _ *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockStudentService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}

// ── Mock PaymentService ──

type mockPaymentService struct {
	createResult    *dto.PaymentResponse
	createErr       error
	getResult       *dto.PaymentResponse
	getErr          error
	listResult      []dto.PaymentResponse
	listErr         error
	statsResult     *dto.PaymentStatsResponse
	statsErr        error
	updateResult    *dto.PaymentResponse
	updateErr       error
	payResult       *dto.PaymentResponse
	payErr          error
	deleteErr       error
	reconcileResult *dto.ReconcileResponse
	reconcileErr    error
}

func (m *mockPaymentService) Create(_ context.Context, _ *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockPaymentService) GetByID(_ context.Context, _ int64) (*dto.PaymentResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockPaymentService) List(_ context.Context, _ *dto.PaymentListRequest) ([]dto.PaymentResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockPaymentService) Stats(_ context.Context) (*dto.PaymentStatsResponse, error) {
	return m.statsResult, m.statsErr
}
func (m *mockPaymentService) Update(_ context.Context, _ int64, _ *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockPaymentService) Pay(_ context.Context, _ int64, _ *dto.PayPaymentRequest) (*dto.PaymentResponse, error) {
	return m.payResult, m.payErr
}
func (m *mockPaymentService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}
func (m *mockPaymentService) Reconcile(_ context.Context) (*dto.ReconcileResponse, error) {
	return m.reconcileResult, m.reconcileErr
}

// ── Mock GroupService ──

type mockGroupService struct {
	createResult   *dto.GroupResponse
	createErr      error
	getResult      *dto.GroupResponse
	getErr         error
	listResult     []dto.GroupResponse
	listErr        error
	updateResult   *dto.GroupResponse
	updateErr      error
	deleteErr      error
	calendarResult string
	calendarErr    error
}

func (m *mockGroupService) Create(_ context.Context, _ *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockGroupService) GetByID(_ context.Context, _ int64) (*dto.GroupResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockGroupService) List(_ context.Context) ([]dto.GroupResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockGroupService) Update(_ context.Context, _ int64, _ *dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockGroupService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}
func (m *mockGroupService) Calendar(_ context.Context, _ int64) (string, error) {
	return m.calendarResult, m.calendarErr
}

// ── Mock FinanceService ──

type mockFinanceService struct {
	summaryResult *dto.FinanceSummaryResponse
	summaryErr    error
	exportBuf     *bytes.Buffer
	exportName    string
	exportErr     error
}

func (m *mockFinanceService) Summary(_ context.Context) (*dto.FinanceSummaryResponse, error) {
	return m.summaryResult, m.summaryErr
}
func (m *mockFinanceService) ExportLedger(_ context.Context) (*bytes.Buffer, string, error) {
	return m.exportBuf, m.exportName, m.exportErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func doRequest(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// ═══════════════════════════════════════════════════════════
// StudentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestStudentHandler_Create_Success(t *testing.T) {
	mock := &mockStudentService{
		createResult: &dto.StudentResponse{ID: 1, FirstName: "Aziz", LastName: "Karimov"},
	}
	h := NewStudentHandler(mock)

	r := gin.New()
	r.POST("/students", h.CreateStudent)

	w := doRequest(r, "POST", "/students", jsonBody(dto.CreateStudentRequest{
		FirstName: "Aziz",
		LastName:  "Karimov",
		JoinDate:  "2026-03-10",
	}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestStudentHandler_Create_BadJSON(t *testing.T) {
	h := NewStudentHandler(&mockStudentService{})

	r := gin.New()
	r.POST("/students", h.CreateStudent)

	w := doRequest(r, "POST", "/students", bytes.NewReader([]byte("invalid json")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestStudentHandler_Create_MissingJoinDate(t *testing.T) {
	h := NewStudentHandler(&mockStudentService{})

	r := gin.New()
	r.POST("/students", h.CreateStudent)

	w := doRequest(r, "POST", "/students", jsonBody(map[string]string{
		"first_name": "Aziz",
		"last_name":  "Karimov",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestStudentHandler_Get_NotFound(t *testing.T) {
	h := NewStudentHandler(&mockStudentService{getErr: service.ErrStudentNotFound})

	r := gin.New()
	r.GET("/students/:id", h.GetStudent)

	w := doRequest(r, "GET", "/students/42", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12001 {
		t.Errorf("expected error code 12001, got %d", resp.Code)
	}
}

func TestStudentHandler_Get_InvalidID(t *testing.T) {
	h := NewStudentHandler(&mockStudentService{})

	r := gin.New()
	r.GET("/students/:id", h.GetStudent)

	w := doRequest(r, "GET", "/students/abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PaymentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPaymentHandler_List_InvalidView(t *testing.T) {
	h := NewPaymentHandler(&mockPaymentService{})

	r := gin.New()
	r.GET("/payments", h.ListPayments)

	w := doRequest(r, "GET", "/payments?view=bogus", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid view should be rejected, got %d", w.Code)
	}
}

func TestPaymentHandler_List_Success(t *testing.T) {
	h := NewPaymentHandler(&mockPaymentService{
		listResult: []dto.PaymentResponse{{ID: 1, Status: "unpaid"}},
	})

	r := gin.New()
	r.GET("/payments", h.ListPayments)

	w := doRequest(r, "GET", "/payments?view=overdue", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestPaymentHandler_Pay_AlreadyPaid(t *testing.T) {
	h := NewPaymentHandler(&mockPaymentService{payErr: service.ErrPaymentAlreadyPaid})

	r := gin.New()
	r.POST("/payments/:id/pay", h.PayPayment)

	w := doRequest(r, "POST", "/payments/7/pay", jsonBody(dto.PayPaymentRequest{Date: "2026-03-08"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 14002 {
		t.Errorf("expected error code 14002, got %d", resp.Code)
	}
}

func TestPaymentHandler_Pay_MissingDate(t *testing.T) {
	h := NewPaymentHandler(&mockPaymentService{})

	r := gin.New()
	r.POST("/payments/:id/pay", h.PayPayment)

	w := doRequest(r, "POST", "/payments/7/pay", jsonBody(map[string]int{"amount": 100}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("pay without a date should be rejected, got %d", w.Code)
	}
}

func TestPaymentHandler_Reconcile_Success(t *testing.T) {
	h := NewPaymentHandler(&mockPaymentService{
		reconcileResult: &dto.ReconcileResponse{Removed: 3},
	})

	r := gin.New()
	r.POST("/payments/reconcile", h.ReconcilePayments)

	w := doRequest(r, "POST", "/payments/reconcile", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// GroupHandler Tests
// ═══════════════════════════════════════════════════════════

func TestGroupHandler_Create_NameExists(t *testing.T) {
	h := NewGroupHandler(&mockGroupService{createErr: service.ErrGroupNameExists})

	r := gin.New()
	r.POST("/groups", h.CreateGroup)

	w := doRequest(r, "POST", "/groups", jsonBody(dto.CreateGroupRequest{
		Name:   "Alpha",
		Course: "English",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestGroupHandler_Calendar_ContentType(t *testing.T) {
	h := NewGroupHandler(&mockGroupService{
		calendarResult: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
	})

	r := gin.New()
	r.GET("/groups/:id/calendar", h.GetGroupCalendar)

	w := doRequest(r, "GET", "/groups/1/calendar", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("content type: got %q", ct)
	}
}

// ═══════════════════════════════════════════════════════════
// FinanceHandler Tests
// ═══════════════════════════════════════════════════════════

func TestFinanceHandler_Summary_Success(t *testing.T) {
	h := NewFinanceHandler(&mockFinanceService{
		summaryResult: &dto.FinanceSummaryResponse{Month: "2026-03", NetProfit: 500_000},
	})

	r := gin.New()
	r.GET("/finance/summary", h.GetSummary)

	w := doRequest(r, "GET", "/finance/summary", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestFinanceHandler_Export_EmptyLedger(t *testing.T) {
	h := NewFinanceHandler(&mockFinanceService{exportErr: service.ErrExportEmptyLedger})

	r := gin.New()
	r.GET("/finance/export", h.ExportLedger)

	w := doRequest(r, "GET", "/finance/export", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestFinanceHandler_Export_SetsDownloadHeaders(t *testing.T) {
	h := NewFinanceHandler(&mockFinanceService{
		exportBuf:  bytes.NewBufferString("xlsx-bytes"),
		exportName: "ledger-2026-03-15.xlsx",
	})

	r := gin.New()
	r.GET("/finance/export", h.ExportLedger)

	w := doRequest(r, "GET", "/finance/export", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

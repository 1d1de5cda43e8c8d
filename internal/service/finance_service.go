package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/model"
	"educrm/backend/internal/repository"
)

// ── Finance business errors ──

var (
	ErrExportEmptyLedger  = errors.New("nothing to export")
	ErrExportGenerateFail = errors.New("generate excel file failed")
)

// FinanceService is the derived-finance business interface.
//
// Summary computes the dashboard figures for the current month. The result is
// cached in Redis for a short TTL and invalidated by every finance-relevant
// mutation; a cache failure only costs a recomputation.
type FinanceService interface {
	Summary(ctx context.Context) (*dto.FinanceSummaryResponse, error)
	// ExportLedger renders the full ledger as an .xlsx workbook with one
	// income sheet and one expense sheet. Returns content and a suggested
	// filename.
	ExportLedger(ctx context.Context) (*bytes.Buffer, string, error)
}

type financeService struct {
	repo   *repository.Repository
	cache  *summaryCache
	logger *zap.Logger
}

// NewFinanceService builds a FinanceService instance.
func NewFinanceService(repo *repository.Repository, cache *summaryCache, logger *zap.Logger) FinanceService {
	return &financeService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Summary ──────────────────────

func (s *financeService) Summary(ctx context.Context) (*dto.FinanceSummaryResponse, error) {
	if cached := s.cache.Get(ctx); cached != nil {
		return cached, nil
	}

	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.logger.Error("list payments failed", zap.Error(err))
		return nil, err
	}
	expenses, err := s.repo.Expense.List(ctx)
	if err != nil {
		s.logger.Error("list expenses failed", zap.Error(err))
		return nil, err
	}
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, err
	}
	groups, err := s.repo.Group.List(ctx)
	if err != nil {
		s.logger.Error("list groups failed", zap.Error(err))
		return nil, err
	}

	month := model.Today().Month()
	totals := aggregateFinance(payments, expenses, month)

	activeGroups := 0
	for i := range groups {
		if groups[i].Status == model.GroupActive {
			activeGroups++
		}
	}

	summary := &dto.FinanceSummaryResponse{
		Month:           month,
		StudentsCount:   len(students),
		TeachersCount:   len(teachers),
		ActiveGroups:    activeGroups,
		MonthlyRevenue:  totals.MonthlyRevenue,
		MonthlyExpenses: totals.MonthlyExpenses,
		TotalDebt:       totals.TotalDebt,
		TotalIncome:     totals.TotalIncome,
		TotalExpenses:   totals.TotalExpenses,
		NetProfit:       totals.NetProfit,
	}

	s.cache.Set(ctx, summary)

	return summary, nil
}

// ────────────────────── ExportLedger ──────────────────────

func (s *financeService) ExportLedger(ctx context.Context) (*bytes.Buffer, string, error) {
	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.logger.Error("list payments failed", zap.Error(err))
		return nil, "", err
	}
	expenses, err := s.repo.Expense.List(ctx)
	if err != nil {
		s.logger.Error("list expenses failed", zap.Error(err))
		return nil, "", err
	}

	paid := classifyPayments(payments, ViewPaid, model.Today())
	if len(paid) == 0 && len(expenses) == 0 {
		return nil, "", ErrExportEmptyLedger
	}

	f := excelize.NewFile()
	defer f.Close()

	const incomeSheet = "Income"
	f.SetSheetName(f.GetSheetName(0), incomeSheet)
	incomeHeader := []interface{}{"Date", "Student", "Group", "Course", "Amount", "Comment"}
	if err := f.SetSheetRow(incomeSheet, "A1", &incomeHeader); err != nil {
		s.logger.Error("write excel header failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	for i := range paid {
		p := &paid[i]
		row := []interface{}{
			p.EffectiveDate().String(), p.StudentName, p.Group, p.Course, p.Amount, p.Comment,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(incomeSheet, cell, &row); err != nil {
			s.logger.Error("write excel row failed", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	const expenseSheet = "Expenses"
	if _, err := f.NewSheet(expenseSheet); err != nil {
		s.logger.Error("create excel sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	expenseHeader := []interface{}{"Date", "Title", "Category", "Amount", "Comment"}
	if err := f.SetSheetRow(expenseSheet, "A1", &expenseHeader); err != nil {
		s.logger.Error("write excel header failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	for i := range expenses {
		e := &expenses[i]
		row := []interface{}{e.Date.String(), e.Title, string(e.Category), e.Amount, e.Comment}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(expenseSheet, cell, &row); err != nil {
			s.logger.Error("write excel row failed", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("serialize excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("ledger-%s.xlsx", model.Today().String())
	return buf, filename, nil
}

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/model"
	"educrm/backend/internal/repository"
)

// ── Expense business errors ──

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// ExpenseService is the expense business interface. Expenses are created and
// deleted only; there is no edit flow.
type ExpenseService interface {
	Create(ctx context.Context, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context) ([]dto.ExpenseResponse, error)
	Delete(ctx context.Context, id int64) error
}

type expenseService struct {
	repo   *repository.Repository
	cache  *summaryCache
	logger *zap.Logger
}

// NewExpenseService builds an ExpenseService instance.
func NewExpenseService(repo *repository.Repository, cache *summaryCache, logger *zap.Logger) ExpenseService {
	return &expenseService{repo: repo, cache: cache, logger: logger}
}

func (s *expenseService) Create(ctx context.Context, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		Title:    req.Title,
		Amount:   req.Amount,
		Date:     date,
		Category: model.ExpenseCategory(req.Category),
		Comment:  req.Comment,
	}

	if err := s.repo.Expense.Create(ctx, expense); err != nil {
		s.logger.Error("create expense failed", zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	return s.toExpenseResponse(expense), nil
}

func (s *expenseService) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := s.repo.Expense.List(ctx)
	if err != nil {
		s.logger.Error("list expenses failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		result = append(result, *s.toExpenseResponse(&expenses[i]))
	}

	return result, nil
}

func (s *expenseService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.Expense.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		s.logger.Error("get expense failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Expense.Delete(ctx, id); err != nil {
		s.logger.Error("delete expense failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx)

	return nil
}

// ── helpers ──

func (s *expenseService) toExpenseResponse(expense *model.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        expense.ID,
		Title:     expense.Title,
		Amount:    expense.Amount,
		Date:      expense.Date.String(),
		Category:  string(expense.Category),
		Comment:   expense.Comment,
		CreatedAt: expense.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: expense.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

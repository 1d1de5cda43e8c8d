package service

import (
	"go.uber.org/zap"

	"educrm/backend/internal/repository"
	"educrm/backend/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Group   GroupService
	Student StudentService
	Teacher TeacherService
	Payment PaymentService
	Expense ExpenseService
	Finance FinanceService
}

// NewService wires repositories into services. rdb may be nil; the finance
// summary then simply goes uncached.
func NewService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) *Service {
	cache := newSummaryCache(rdb, logger)

	return &Service{
		Group:   NewGroupService(repo, logger),
		Student: NewStudentService(repo, cache, logger),
		Teacher: NewTeacherService(repo, logger),
		Payment: NewPaymentService(repo, cache, logger),
		Expense: NewExpenseService(repo, cache, logger),
		Finance: NewFinanceService(repo, cache, logger),
	}
}

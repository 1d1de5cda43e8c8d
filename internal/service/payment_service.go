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

// ── Payment business errors ──

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentAlreadyPaid = errors.New("payment already paid")
)

// PaymentService is the payment-ledger business interface.
type PaymentService interface {
	// Create records direct income: a payment born paid on the given date.
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PaymentResponse, error)
	// List returns one classification view of the ledger as of today.
	List(ctx context.Context, req *dto.PaymentListRequest) ([]dto.PaymentResponse, error)
	// Stats aggregates count and amount per classification bucket.
	Stats(ctx context.Context) (*dto.PaymentStatsResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	// Pay settles an unpaid payment: status becomes paid, paid_at records the
	// settlement date and the original due date is retained.
	Pay(ctx context.Context, id int64, req *dto.PayPaymentRequest) (*dto.PaymentResponse, error)
	Delete(ctx context.Context, id int64) error
	// Reconcile removes unpaid payments whose student no longer exists. It is
	// the explicit replacement for read-time pruning; reads stay pure.
	Reconcile(ctx context.Context) (*dto.ReconcileResponse, error)
}

type paymentService struct {
	repo   *repository.Repository
	cache  *summaryCache
	logger *zap.Logger
}

// NewPaymentService builds a PaymentService instance.
func NewPaymentService(repo *repository.Repository, cache *summaryCache, logger *zap.Logger) PaymentService {
	return &paymentService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create (direct income) ──────────────────────

func (s *paymentService) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		StudentID:   req.StudentID,
		StudentName: "unknown",
		Course:      req.Course,
		Group:       req.Group,
		Amount:      req.Amount,
		DueDate:     date,
		PaidAt:      &date,
		Status:      model.PaymentPaid,
		Comment:     req.Comment,
	}

	if req.StudentID != nil {
		student, err := s.repo.Student.GetByID(ctx, *req.StudentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStudentNotFound
			}
			s.logger.Error("get student for income failed",
				zap.Int64("student_id", *req.StudentID), zap.Error(err))
			return nil, err
		}
		payment.StudentName = student.FullName()
		if payment.Group == "" {
			payment.Group = student.Group
		}
		if payment.Course == "" {
			payment.Course = student.Group
		}
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.logger.Error("create payment failed", zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	return s.toPaymentResponse(payment, model.Today()), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *paymentService) GetByID(ctx context.Context, id int64) (*dto.PaymentResponse, error) {
	payment, err := s.repo.Payment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("get payment failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toPaymentResponse(payment, model.Today()), nil
}

// ────────────────────── List ──────────────────────

func (s *paymentService) List(ctx context.Context, req *dto.PaymentListRequest) ([]dto.PaymentResponse, error) {
	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.logger.Error("list payments failed", zap.Error(err))
		return nil, err
	}

	today := model.Today()
	filtered := classifyPayments(payments, req.View, today)

	result := make([]dto.PaymentResponse, 0, len(filtered))
	for i := range filtered {
		result = append(result, *s.toPaymentResponse(&filtered[i], today))
	}

	return result, nil
}

// ────────────────────── Stats ──────────────────────

func (s *paymentService) Stats(ctx context.Context) (*dto.PaymentStatsResponse, error) {
	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.logger.Error("list payments failed", zap.Error(err))
		return nil, err
	}

	today := model.Today()
	stats := &dto.PaymentStatsResponse{}

	stats.Overdue.Count, stats.Overdue.Amount = bucketStats(payments, ViewOverdue, today)
	stats.Upcoming.Count, stats.Upcoming.Amount = bucketStats(payments, ViewUpcoming, today)
	stats.Paid.Count, stats.Paid.Amount = bucketStats(payments, ViewPaid, today)

	return stats, nil
}

// ────────────────────── Update ──────────────────────

func (s *paymentService) Update(ctx context.Context, id int64, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := s.repo.Payment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("get payment failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := model.ParseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		payment.DueDate = dueDate
	}
	if req.NextPaymentDate != nil {
		next, err := model.ParseDate(*req.NextPaymentDate)
		if err != nil {
			return nil, err
		}
		payment.NextPaymentDate = &next
	}
	if req.Course != nil {
		payment.Course = *req.Course
	}
	if req.Group != nil {
		payment.Group = *req.Group
	}
	if req.Status != nil {
		// Generic field edit may set status directly, bypassing Pay. Moving
		// back to unpaid clears the settlement date.
		payment.Status = model.PaymentStatus(*req.Status)
		if payment.Status == model.PaymentUnpaid {
			payment.PaidAt = nil
		}
	}
	if req.Comment != nil {
		payment.Comment = *req.Comment
	}

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		s.logger.Error("update payment failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	return s.toPaymentResponse(payment, model.Today()), nil
}

// ────────────────────── Pay ──────────────────────

func (s *paymentService) Pay(ctx context.Context, id int64, req *dto.PayPaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := s.repo.Payment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("get payment failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if payment.Status == model.PaymentPaid {
		return nil, ErrPaymentAlreadyPaid
	}

	paidAt, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	payment.Status = model.PaymentPaid
	payment.PaidAt = &paidAt
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Comment != "" {
		payment.Comment = req.Comment
	}

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		s.logger.Error("mark payment paid failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	return s.toPaymentResponse(payment, model.Today()), nil
}

// ────────────────────── Delete ──────────────────────

func (s *paymentService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.Payment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		s.logger.Error("get payment failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Payment.Delete(ctx, id); err != nil {
		s.logger.Error("delete payment failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx)

	return nil
}

// ────────────────────── Reconcile ──────────────────────

func (s *paymentService) Reconcile(ctx context.Context) (*dto.ReconcileResponse, error) {
	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.logger.Error("list payments failed", zap.Error(err))
		return nil, err
	}
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}

	existing := make(map[int64]bool, len(students))
	for i := range students {
		existing[students[i].ID] = true
	}

	removed := 0
	for i := range payments {
		p := &payments[i]
		// Only unpaid records with a dangling student reference are orphans.
		// Direct income (nil student_id) and paid history stay untouched.
		if p.Status != model.PaymentUnpaid || p.StudentID == nil || existing[*p.StudentID] {
			continue
		}
		if err := s.repo.Payment.Delete(ctx, p.ID); err != nil {
			s.logger.Error("reconcile delete failed", zap.Int64("payment_id", p.ID), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		s.cache.Invalidate(ctx)
		s.logger.Info("reconciled orphaned payments", zap.Int("removed", removed))
	}

	return &dto.ReconcileResponse{Removed: removed}, nil
}

// ── helpers ──

func (s *paymentService) toPaymentResponse(p *model.Payment, today model.Date) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:           p.ID,
		StudentID:    p.StudentID,
		StudentName:  p.StudentName,
		Course:       p.Course,
		Group:        p.Group,
		Amount:       p.Amount,
		DueDate:      p.DueDate.String(),
		Status:       string(p.Status),
		Comment:      p.Comment,
		DaysUntilDue: p.DueDate.DaysUntil(today),
		CreatedAt:    p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.String()
	}
	if p.NextPaymentDate != nil {
		resp.NextPaymentDate = p.NextPaymentDate.String()
	}
	return resp
}

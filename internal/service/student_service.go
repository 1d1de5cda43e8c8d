package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/model"
	"educrm/backend/internal/repository"
)

// ── Student business errors ──

var (
	ErrStudentNotFound = errors.New("student not found")
)

// unknownCourse is the sentinel used when debt issuance cannot resolve the
// student's group to a course.
const unknownCourse = "unknown"

// StudentService is the student business interface.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	repo   *repository.Repository
	cache  *summaryCache
	logger *zap.Logger
}

// NewStudentService builds a StudentService instance.
func NewStudentService(repo *repository.Repository, cache *summaryCache, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create enrolls a student and, when payment_amount > 0, issues the initial
// debt: one unpaid payment due on the join date. Issuance is a one-shot with
// no deduplication; a second creation with the same payload yields a second
// independent debt record. There is no compensating transaction: if the
// payment insert fails the student stays and the failure is logged.
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	joinDate, err := model.ParseDate(req.JoinDate)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Age:           req.Age,
		Source:        req.Source,
		Gender:        req.Gender,
		JoinDate:      joinDate,
		ParentName:    req.ParentName,
		ParentPhone:   req.ParentPhone,
		Group:         req.Group,
		PaymentAmount: req.PaymentAmount,
		Comment:       req.Comment,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, err
	}

	if student.PaymentAmount > 0 {
		s.issueInitialDebt(ctx, student)
	}

	s.cache.Invalidate(ctx)

	return s.toStudentResponse(student), nil
}

// issueInitialDebt synthesizes the at-creation unpaid payment. The course is
// resolved from the assigned group when possible.
func (s *studentService) issueInitialDebt(ctx context.Context, student *model.Student) {
	course := unknownCourse
	if student.Group != "" {
		group, err := s.repo.Group.GetByName(ctx, student.Group)
		if err == nil {
			course = group.Course
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("resolve group for debt issuance failed",
				zap.String("group", student.Group), zap.Error(err))
		}
	}

	studentID := student.ID
	payment := &model.Payment{
		StudentID:   &studentID,
		StudentName: student.FullName(),
		Course:      course,
		Group:       student.Group,
		Amount:      student.PaymentAmount,
		DueDate:     student.JoinDate,
		Status:      model.PaymentUnpaid,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		// The student record is already persisted; it stays without its
		// paired debt.
		s.logger.Error("issue initial debt failed",
			zap.Int64("student_id", student.ID), zap.Error(err))
	}
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("get student failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toStudentResponse(student), nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(req.Search))

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		st := &students[i]
		if search != "" &&
			!strings.Contains(strings.ToLower(st.FirstName), search) &&
			!strings.Contains(strings.ToLower(st.LastName), search) {
			continue
		}
		result = append(result, *s.toStudentResponse(st))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

// Update edits the student record only. Existing payments keep their name
// snapshot: renaming a student does not rewrite ledger history.
func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("get student failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Age != nil {
		student.Age = *req.Age
	}
	if req.Source != nil {
		student.Source = *req.Source
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.JoinDate != nil {
		joinDate, err := model.ParseDate(*req.JoinDate)
		if err != nil {
			return nil, err
		}
		student.JoinDate = joinDate
	}
	if req.ParentName != nil {
		student.ParentName = *req.ParentName
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}
	if req.Group != nil {
		student.Group = *req.Group
	}
	if req.PaymentAmount != nil {
		student.PaymentAmount = *req.PaymentAmount
	}
	if req.Comment != nil {
		student.Comment = *req.Comment
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toStudentResponse(student), nil
}

// ────────────────────── Delete ──────────────────────

// Delete removes the student and cascades to their still-unpaid payments,
// matched by student id. Paid payments are retained as historical record.
func (s *studentService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("get student failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("delete student failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.cleanupUnpaidPayments(ctx, id)
	s.cache.Invalidate(ctx)

	return nil
}

// cleanupUnpaidPayments deletes the student's unpaid payments one by one.
// Each deletion is an independent store call; a failure is logged and leaves
// that record for a later reconcile run.
func (s *studentService) cleanupUnpaidPayments(ctx context.Context, studentID int64) {
	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.logger.Error("list payments for cascade cleanup failed",
			zap.Int64("student_id", studentID), zap.Error(err))
		return
	}

	for i := range payments {
		p := &payments[i]
		if p.Status != model.PaymentUnpaid || p.StudentID == nil || *p.StudentID != studentID {
			continue
		}
		if err := s.repo.Payment.Delete(ctx, p.ID); err != nil {
			s.logger.Error("cascade delete payment failed",
				zap.Int64("payment_id", p.ID), zap.Error(err))
		}
	}
}

// ── helpers ──

func (s *studentService) toStudentResponse(student *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:            student.ID,
		FirstName:     student.FirstName,
		LastName:      student.LastName,
		Phone:         student.Phone,
		Age:           student.Age,
		Source:        student.Source,
		Gender:        student.Gender,
		JoinDate:      student.JoinDate.String(),
		ParentName:    student.ParentName,
		ParentPhone:   student.ParentPhone,
		Group:         student.Group,
		PaymentAmount: student.PaymentAmount,
		Comment:       student.Comment,
		CreatedAt:     student.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     student.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

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

// ── Teacher business errors ──

var (
	ErrTeacherNotFound = errors.New("teacher not found")
)

// TeacherService is the teacher business interface.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TeacherResponse, error)
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id int64) error
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService builds a TeacherService instance.
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	startDate, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	teacher := &model.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Age:       req.Age,
		StartDate: startDate,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("create teacher failed", zap.Error(err))
		return nil, err
	}

	return s.toTeacherResponse(teacher), nil
}

func (s *teacherService) GetByID(ctx context.Context, id int64) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("get teacher failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTeacherResponse(teacher), nil
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, *s.toTeacherResponse(&teachers[i]))
	}

	return result, nil
}

func (s *teacherService) Update(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("get teacher failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.FirstName != nil {
		teacher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = *req.LastName
	}
	if req.Phone != nil {
		teacher.Phone = *req.Phone
	}
	if req.Age != nil {
		teacher.Age = *req.Age
	}
	if req.StartDate != nil {
		startDate, err := model.ParseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		teacher.StartDate = startDate
	}

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("update teacher failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTeacherResponse(teacher), nil
}

func (s *teacherService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("get teacher failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		s.logger.Error("delete teacher failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func (s *teacherService) toTeacherResponse(teacher *model.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:        teacher.ID,
		FirstName: teacher.FirstName,
		LastName:  teacher.LastName,
		Phone:     teacher.Phone,
		Age:       teacher.Age,
		StartDate: teacher.StartDate.String(),
		CreatedAt: teacher.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: teacher.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

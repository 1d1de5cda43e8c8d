package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/model"
	"educrm/backend/internal/repository"
)

// ── Group business errors ──

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrGroupNameExists = errors.New("group name already exists")
	ErrGroupNoSchedule = errors.New("group has no schedule")
)

// GroupService is the study-group business interface.
type GroupService interface {
	Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.GroupResponse, error)
	List(ctx context.Context) ([]dto.GroupResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error)
	Delete(ctx context.Context, id int64) error
	// Calendar renders the group's weekly schedule as an iCalendar feed.
	Calendar(ctx context.Context, id int64) (string, error)
}

type groupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGroupService builds a GroupService instance.
func NewGroupService(repo *repository.Repository, logger *zap.Logger) GroupService {
	return &groupService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *groupService) Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if _, err := s.repo.Group.GetByName(ctx, req.Name); err == nil {
		return nil, ErrGroupNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check group name failed", zap.Error(err))
		return nil, err
	}

	group := &model.Group{
		Name:   req.Name,
		Course: req.Course,
		Days:   req.Days,
		Time:   req.Time,
		Status: model.GroupActive,
	}

	if err := s.repo.Group.Create(ctx, group); err != nil {
		s.logger.Error("create group failed", zap.Error(err))
		return nil, err
	}

	return s.toGroupResponse(group), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *groupService) GetByID(ctx context.Context, id int64) (*dto.GroupResponse, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("get group failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toGroupResponse(group), nil
}

// ────────────────────── List ──────────────────────

func (s *groupService) List(ctx context.Context) ([]dto.GroupResponse, error) {
	groups, err := s.repo.Group.List(ctx)
	if err != nil {
		s.logger.Error("list groups failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *s.toGroupResponse(&groups[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *groupService) Update(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("get group failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil && *req.Name != group.Name {
		if _, err := s.repo.Group.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrGroupNameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("check group name failed", zap.Error(err))
			return nil, err
		}
		group.Name = *req.Name
	}
	if req.Course != nil {
		group.Course = *req.Course
	}
	if req.Days != nil {
		group.Days = *req.Days
	}
	if req.Time != nil {
		group.Time = *req.Time
	}
	if req.StudentCount != nil {
		group.StudentCount = *req.StudentCount
	}
	if req.Status != nil {
		group.Status = model.GroupStatus(*req.Status)
	}

	if err := s.repo.Group.Update(ctx, group); err != nil {
		s.logger.Error("update group failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toGroupResponse(group), nil
}

// ────────────────────── Delete ──────────────────────

func (s *groupService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		s.logger.Error("get group failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Group.Delete(ctx, id); err != nil {
		s.logger.Error("delete group failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── Calendar ──────────────────────

// Calendar builds a weekly recurring iCalendar feed from the group's days
// ("Mon-Wed-Fri") and time ("14:00-16:00") fields.
func (s *groupService) Calendar(ctx context.Context, id int64) (string, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrGroupNotFound
		}
		s.logger.Error("get group failed", zap.Int64("id", id), zap.Error(err))
		return "", err
	}

	weekdays, err := parseScheduleDays(group.Days)
	if err != nil {
		return "", err
	}
	startHour, startMin, endHour, endMin, err := parseTimeRange(group.Time)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//educrm//group schedule//EN")

	now := time.Now()
	for _, wd := range weekdays {
		first := nextWeekday(now, wd)
		start := time.Date(first.Year(), first.Month(), first.Day(), startHour, startMin, 0, 0, time.Local)
		end := time.Date(first.Year(), first.Month(), first.Day(), endHour, endMin, 0, 0, time.Local)

		event := cal.AddEvent(fmt.Sprintf("group-%d-%s@educrm", group.ID, strings.ToLower(wd.String()[:2])))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s (%s)", group.Name, group.Course))
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + byDayToken(wd))
	}

	return cal.Serialize(), nil
}

// ── schedule parsing helpers ──

var scheduleDayNames = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// parseScheduleDays parses a dash-separated day list like "Mon-Wed-Fri".
func parseScheduleDays(days string) ([]time.Weekday, error) {
	if strings.TrimSpace(days) == "" {
		return nil, ErrGroupNoSchedule
	}

	var result []time.Weekday
	for _, token := range strings.Split(days, "-") {
		token = strings.ToLower(strings.TrimSpace(token))
		wd, ok := scheduleDayNames[token]
		if !ok {
			return nil, fmt.Errorf("invalid schedule day %q", token)
		}
		result = append(result, wd)
	}
	return result, nil
}

// parseTimeRange parses a "14:00-16:00" range.
func parseTimeRange(timeRange string) (startHour, startMin, endHour, endMin int, err error) {
	parts := strings.Split(strings.TrimSpace(timeRange), "-")
	if len(parts) != 2 {
		return 0, 0, 0, 0, ErrGroupNoSchedule
	}
	start, err := time.Parse("15:04", strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid schedule time %q: %w", parts[0], err)
	}
	end, err := time.Parse("15:04", strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid schedule time %q: %w", parts[1], err)
	}
	return start.Hour(), start.Minute(), end.Hour(), end.Minute(), nil
}

// nextWeekday returns the next date (today included) falling on wd.
func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	offset := (int(wd) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, offset)
}

// byDayToken maps a weekday to the RRULE BYDAY token.
func byDayToken(wd time.Weekday) string {
	return [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}[wd]
}

// ── helpers ──

func (s *groupService) toGroupResponse(group *model.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:           group.ID,
		Name:         group.Name,
		Course:       group.Course,
		Days:         group.Days,
		Time:         group.Time,
		StudentCount: group.StudentCount,
		Status:       string(group.Status),
		CreatedAt:    group.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    group.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

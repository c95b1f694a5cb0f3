package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

// scheduleListCacheKey caches the full denormalized listing; it is
// flushed on every schedule write.
const scheduleListCacheKey = "schedules:all"

// scheduleStore is the persistence surface the schedule service needs
type scheduleStore interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id int64) error
	GetViewByID(ctx context.Context, id int64) (*models.ScheduleView, error)
	GetAllViews(ctx context.Context) ([]*models.ScheduleView, error)
	GetViewsByInstructor(ctx context.Context, instructorID int64) ([]*models.ScheduleView, error)
	GetViewsByRoom(ctx context.Context, roomID int64) ([]*models.ScheduleView, error)
	GetViewsByTimeslot(ctx context.Context, timeslotID int64) ([]*models.ScheduleView, error)
}

// timeslotCodeGetter resolves a timeslot by code, nil when absent
type timeslotCodeGetter interface {
	GetByCode(ctx context.Context, code string) (*models.Timeslot, error)
}

// ScheduleService mediates all writes to schedule entries. Every create
// and update passes through the conflict checker first; nothing is
// persisted when the check fails.
//
// The check and the write are separate operations against the shared
// store, so two concurrent creates that each pass the pre-check can both
// land even though they collide on instructor or room. Only the full
// assignment tuple is enforced at the data layer; a lost race on it is
// reported as a duplicate, not as a conflict list.
type ScheduleService struct {
	scheduleRepo scheduleStore
	timeslotRepo timeslotCodeGetter
	checker      *ConflictChecker
	listCache    *cache.Cache
	listTTL      time.Duration
	logger       zerolog.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	scheduleRepo scheduleStore,
	timeslotRepo timeslotCodeGetter,
	checker *ConflictChecker,
	listCache *cache.Cache,
	listTTL time.Duration,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		timeslotRepo: timeslotRepo,
		checker:      checker,
		listCache:    listCache,
		listTTL:      listTTL,
		logger:       logger,
	}
}

// validateAssignment validates a schedule tuple before any store access
func validateAssignment(schedule *models.Schedule) error {
	if schedule == nil {
		return fmt.Errorf("%w: schedule is nil", apperrors.ErrValidationFailed)
	}
	if schedule.CourseID <= 0 {
		return fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}
	if schedule.SectionID <= 0 {
		return fmt.Errorf("%w: section ID must be positive", apperrors.ErrValidationFailed)
	}
	if schedule.InstructorID <= 0 {
		return fmt.Errorf("%w: instructor ID must be positive", apperrors.ErrValidationFailed)
	}
	if schedule.RoomID <= 0 {
		return fmt.Errorf("%w: room ID must be positive", apperrors.ErrValidationFailed)
	}
	if schedule.TimeslotID <= 0 {
		return fmt.Errorf("%w: timeslot ID must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateSchedule creates a schedule entry after a full conflict check
func (s *ScheduleService) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.ScheduleView, error) {
	if err := validateAssignment(schedule); err != nil {
		return nil, err
	}

	conflicts, err := s.checker.CheckAll(ctx, *schedule, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking conflicts: %w", err)
	}

	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	s.listCache.Flush()
	s.logger.Info().Int64("scheduleId", schedule.ID).Msg("Schedule entry created")

	return s.scheduleRepo.GetViewByID(ctx, schedule.ID)
}

// UpdateSchedule updates an existing schedule entry after a conflict
// check that excludes the entry itself
func (s *ScheduleService) UpdateSchedule(ctx context.Context, id int64, schedule *models.Schedule) (*models.ScheduleView, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}
	if err := validateAssignment(schedule); err != nil {
		return nil, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	conflicts, err := s.checker.CheckAll(ctx, *schedule, id)
	if err != nil {
		return nil, fmt.Errorf("error checking conflicts: %w", err)
	}

	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	schedule.ID = id
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}

	s.listCache.Flush()
	s.logger.Info().Int64("scheduleId", id).Msg("Schedule entry updated")

	return s.scheduleRepo.GetViewByID(ctx, id)
}

// DeleteSchedule removes a schedule entry unconditionally. Removal cannot
// introduce conflicts, so no re-validation is needed.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.listCache.Flush()
	s.logger.Info().Int64("scheduleId", id).Msg("Schedule entry deleted")
	return nil
}

// CheckConflicts runs the conflict checker without attempting a write.
// Used for interactive pre-flight validation before submission.
func (s *ScheduleService) CheckConflicts(ctx context.Context, schedule models.Schedule, excludeScheduleID int64) ([]models.ScheduleConflict, error) {
	if err := validateAssignment(&schedule); err != nil {
		return nil, err
	}

	return s.checker.CheckAll(ctx, schedule, excludeScheduleID)
}

// GetScheduleByID retrieves a denormalized schedule view
func (s *ScheduleService) GetScheduleByID(ctx context.Context, id int64) (*models.ScheduleView, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}

	view, err := s.scheduleRepo.GetViewByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}
	if view == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	return view, nil
}

// GetAllSchedules retrieves all denormalized schedule views, served from
// a short-lived cache between writes
func (s *ScheduleService) GetAllSchedules(ctx context.Context) ([]*models.ScheduleView, error) {
	if cached, found := s.listCache.Get(scheduleListCacheKey); found {
		if views, ok := cached.([]*models.ScheduleView); ok {
			return views, nil
		}
	}

	views, err := s.scheduleRepo.GetAllViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedules: %w", err)
	}

	s.listCache.Set(scheduleListCacheKey, views, s.listTTL)
	return views, nil
}

// GetSchedulesByInstructor retrieves schedule views for one instructor
func (s *ScheduleService) GetSchedulesByInstructor(ctx context.Context, instructorID int64) ([]*models.ScheduleView, error) {
	if instructorID <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	return s.scheduleRepo.GetViewsByInstructor(ctx, instructorID)
}

// GetSchedulesByRoom retrieves schedule views for one room
func (s *ScheduleService) GetSchedulesByRoom(ctx context.Context, roomID int64) ([]*models.ScheduleView, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: invalid room ID", apperrors.ErrValidationFailed)
	}

	return s.scheduleRepo.GetViewsByRoom(ctx, roomID)
}

// GetSchedulesByTimeslotCode retrieves schedule views for the timeslot
// with the given code
func (s *ScheduleService) GetSchedulesByTimeslotCode(ctx context.Context, code string) ([]*models.ScheduleView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: timeslot code cannot be empty", apperrors.ErrValidationFailed)
	}

	timeslot, err := s.timeslotRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timeslot: %w", err)
	}
	if timeslot == nil {
		return nil, apperrors.ErrTimeslotNotFound
	}

	return s.scheduleRepo.GetViewsByTimeslot(ctx, timeslot.ID)
}

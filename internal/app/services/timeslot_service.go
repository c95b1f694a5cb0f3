package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
	"github.com/atikurshafi/cse327/internal/pkg/validation"
)

// timeslotStore is the persistence surface the timeslot service needs
type timeslotStore interface {
	Create(ctx context.Context, timeslot *models.Timeslot) error
	GetByID(ctx context.Context, id int64) (*models.Timeslot, error)
	GetByCode(ctx context.Context, code string) (*models.Timeslot, error)
	GetAll(ctx context.Context) ([]*models.Timeslot, error)
	Update(ctx context.Context, timeslot *models.Timeslot) error
	Delete(ctx context.Context, id int64) error
}

// TimeslotService handles timeslot-related operations
type TimeslotService struct {
	timeslotRepo timeslotStore
}

// NewTimeslotService creates a new timeslot service instance
func NewTimeslotService(timeslotRepo timeslotStore) *TimeslotService {
	return &TimeslotService{
		timeslotRepo: timeslotRepo,
	}
}

// validateTimeslot validates and normalizes timeslot data before store
// operations. Codes are stored upper-cased; "HH:MM" times compare
// lexically, so the window check is a plain string comparison.
func validateTimeslot(timeslot *models.Timeslot) error {
	if timeslot == nil {
		return fmt.Errorf("%w: timeslot is nil", apperrors.ErrValidationFailed)
	}

	timeslot.Code = strings.ToUpper(strings.TrimSpace(timeslot.Code))
	if !validation.CompiledPatterns.Code.MatchString(timeslot.Code) {
		return fmt.Errorf("%w: timeslot code must be alphanumeric and start with a letter", apperrors.ErrValidationFailed)
	}

	if !timeslot.DayPattern.Valid() {
		return fmt.Errorf("%w: day pattern must be ST, MW or RA", apperrors.ErrValidationFailed)
	}

	timeslot.StartTime = strings.TrimSpace(timeslot.StartTime)
	timeslot.EndTime = strings.TrimSpace(timeslot.EndTime)
	if !validation.CompiledPatterns.TimeOfDay.MatchString(timeslot.StartTime) {
		return fmt.Errorf("%w: start time must be in HH:MM format", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.TimeOfDay.MatchString(timeslot.EndTime) {
		return fmt.Errorf("%w: end time must be in HH:MM format", apperrors.ErrValidationFailed)
	}
	if timeslot.StartTime >= timeslot.EndTime {
		return fmt.Errorf("%w: start time must be before end time", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateTimeslot creates a new timeslot
func (s *TimeslotService) CreateTimeslot(ctx context.Context, timeslot *models.Timeslot) error {
	if err := validateTimeslot(timeslot); err != nil {
		return err
	}

	return s.timeslotRepo.Create(ctx, timeslot)
}

// GetTimeslotByID retrieves a timeslot by ID
func (s *TimeslotService) GetTimeslotByID(ctx context.Context, id int64) (*models.Timeslot, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid timeslot ID", apperrors.ErrValidationFailed)
	}

	timeslot, err := s.timeslotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timeslot: %w", err)
	}

	if timeslot == nil {
		return nil, apperrors.ErrTimeslotNotFound
	}

	return timeslot, nil
}

// GetTimeslotByCode retrieves a timeslot by its code
func (s *TimeslotService) GetTimeslotByCode(ctx context.Context, code string) (*models.Timeslot, error) {
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

	return timeslot, nil
}

// GetAllTimeslots retrieves all timeslots
func (s *TimeslotService) GetAllTimeslots(ctx context.Context) ([]*models.Timeslot, error) {
	timeslots, err := s.timeslotRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timeslots: %w", err)
	}

	return timeslots, nil
}

// UpdateTimeslot updates an existing timeslot
func (s *TimeslotService) UpdateTimeslot(ctx context.Context, timeslot *models.Timeslot) error {
	if timeslot == nil || timeslot.ID <= 0 {
		return fmt.Errorf("%w: invalid timeslot ID", apperrors.ErrValidationFailed)
	}
	if err := validateTimeslot(timeslot); err != nil {
		return err
	}

	return s.timeslotRepo.Update(ctx, timeslot)
}

// DeleteTimeslot deletes a timeslot by ID
func (s *TimeslotService) DeleteTimeslot(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid timeslot ID", apperrors.ErrValidationFailed)
	}

	return s.timeslotRepo.Delete(ctx, id)
}

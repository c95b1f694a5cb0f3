package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
	"github.com/atikurshafi/cse327/internal/pkg/validation"
)

// instructorStore is the persistence surface the instructor service needs
type instructorStore interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// InstructorService handles instructor-related operations
type InstructorService struct {
	instructorRepo instructorStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo instructorStore) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
	}
}

// validateInstructor validates and normalizes instructor data before
// store operations. Emails are stored lower-cased.
func validateInstructor(instructor *models.Instructor) error {
	if instructor == nil {
		return fmt.Errorf("%w: instructor is nil", apperrors.ErrValidationFailed)
	}

	instructor.Name = strings.TrimSpace(instructor.Name)
	nameValid := validation.NewStringValidation(instructor.Name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength)
	if !nameValid.Validate() {
		return fmt.Errorf("%w: instructor name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	instructor.Email = strings.ToLower(strings.TrimSpace(instructor.Email))
	if !validation.CompiledPatterns.Email.MatchString(instructor.Email) {
		return fmt.Errorf("%w: instructor email is not a valid address", apperrors.ErrValidationFailed)
	}

	instructor.Availability = strings.TrimSpace(instructor.Availability)

	if instructor.Type == "" {
		instructor.Type = models.InstructorTypeFaculty
	}
	if !instructor.Type.Valid() {
		return fmt.Errorf("%w: instructor type must be FACULTY or CLUB", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateInstructor creates a new instructor
func (s *InstructorService) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := validateInstructor(instructor); err != nil {
		return err
	}

	return s.instructorRepo.Create(ctx, instructor)
}

// GetInstructorByID retrieves an instructor by ID
func (s *InstructorService) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	if instructor == nil {
		return nil, apperrors.ErrInstructorNotFound
	}

	return instructor, nil
}

// GetAllInstructors retrieves all instructors
func (s *InstructorService) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}

	return instructors, nil
}

// UpdateInstructor updates an existing instructor
func (s *InstructorService) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if instructor == nil || instructor.ID <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}
	if err := validateInstructor(instructor); err != nil {
		return err
	}

	return s.instructorRepo.Update(ctx, instructor)
}

// DeleteInstructor deletes an instructor by ID
func (s *InstructorService) DeleteInstructor(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	return s.instructorRepo.Delete(ctx, id)
}

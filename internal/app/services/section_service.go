package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

// sectionStore is the persistence surface the section service needs
type sectionStore interface {
	Create(ctx context.Context, section *models.Section) error
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetAll(ctx context.Context) ([]*models.Section, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error)
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, id int64) error
}

// SectionService handles section-related operations
type SectionService struct {
	sectionRepo sectionStore
	courseRepo  courseGetter
}

// NewSectionService creates a new section service instance
func NewSectionService(sectionRepo sectionStore, courseRepo courseGetter) *SectionService {
	return &SectionService{
		sectionRepo: sectionRepo,
		courseRepo:  courseRepo,
	}
}

// validateSection validates section data before store operations
func validateSection(section *models.Section) error {
	if section == nil {
		return fmt.Errorf("%w: section is nil", apperrors.ErrValidationFailed)
	}

	if section.CourseID <= 0 {
		return fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}

	section.SectionNumber = strings.TrimSpace(section.SectionNumber)
	if section.SectionNumber == "" {
		return fmt.Errorf("%w: section number cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// resolveCourse verifies that the referenced course exists and returns it
func (s *SectionService) resolveCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// CreateSection creates a new section of a course
func (s *SectionService) CreateSection(ctx context.Context, section *models.Section) error {
	if err := validateSection(section); err != nil {
		return err
	}

	course, err := s.resolveCourse(ctx, section.CourseID)
	if err != nil {
		return err
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return err
	}

	section.Course = course
	return nil
}

// GetSectionByID retrieves a section by ID with its course attached
func (s *SectionService) GetSectionByID(ctx context.Context, id int64) (*models.Section, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid section ID", apperrors.ErrValidationFailed)
	}

	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	if section == nil {
		return nil, apperrors.ErrSectionNotFound
	}

	s.attachCourses(ctx, section)
	return section, nil
}

// GetAllSections retrieves all sections with their courses attached
func (s *SectionService) GetAllSections(ctx context.Context) ([]*models.Section, error) {
	sections, err := s.sectionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections: %w", err)
	}

	s.attachCourses(ctx, sections...)
	return sections, nil
}

// GetSectionsByCourseID retrieves all sections of a course
func (s *SectionService) GetSectionsByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.resolveCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections by course: %w", err)
	}

	for _, section := range sections {
		section.Course = course
	}

	return sections, nil
}

// UpdateSection updates an existing section
func (s *SectionService) UpdateSection(ctx context.Context, section *models.Section) error {
	if section == nil || section.ID <= 0 {
		return fmt.Errorf("%w: invalid section ID", apperrors.ErrValidationFailed)
	}
	if err := validateSection(section); err != nil {
		return err
	}

	course, err := s.resolveCourse(ctx, section.CourseID)
	if err != nil {
		return err
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return err
	}

	section.Course = course
	return nil
}

// DeleteSection deletes a section by ID
func (s *SectionService) DeleteSection(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid section ID", apperrors.ErrValidationFailed)
	}

	return s.sectionRepo.Delete(ctx, id)
}

// attachCourses resolves and attaches the course relation for display
func (s *SectionService) attachCourses(ctx context.Context, sections ...*models.Section) {
	for _, section := range sections {
		course, err := s.courseRepo.GetByID(ctx, section.CourseID)
		if err == nil && course != nil {
			section.Course = course
		}
	}
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

// courseStore is the persistence surface the course service needs
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course-related operations
type CourseService struct {
	courseRepo courseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// validateCourse validates and normalizes course data before store operations.
// Codes are stored upper-cased.
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	course.Code = strings.ToUpper(strings.TrimSpace(course.Code))
	if course.Code == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	course.Name = strings.TrimSpace(course.Name)
	if course.Name == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.Type == "" {
		course.Type = models.CourseTypeTheory
	}
	if !course.Type.Valid() {
		return fmt.Errorf("%w: course type must be THEORY, LAB or CLUB", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}

	return s.courseRepo.Create(ctx, course)
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course == nil || course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	if err := validateCourse(course); err != nil {
		return err
	}

	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse deletes a course by ID
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.Delete(ctx, id)
}

package apperrors

import (
	"errors"

	"github.com/atikurshafi/cse327/internal/app/models"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrResourceInUse         = errors.New("resource is referenced by existing data and cannot be deleted")
	ErrInvalidReference      = errors.New("referenced entity does not exist")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this code already exists")
)

// Section errors
var (
	ErrSectionNotFound      = errors.New("section not found")
	ErrSectionAlreadyExists = errors.New("section already exists for this course")
)

// Instructor errors
var (
	ErrInstructorNotFound      = errors.New("instructor not found")
	ErrInstructorAlreadyExists = errors.New("instructor with this email already exists")
)

// Room errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room with this number already exists")
)

// Timeslot errors
var (
	ErrTimeslotNotFound      = errors.New("timeslot not found")
	ErrTimeslotAlreadyExists = errors.New("timeslot with this code already exists")
)

// Schedule errors
var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleAlreadyExists = errors.New("duplicate schedule entry already exists")
)

// ConflictError reports business-rule conflicts detected for a candidate
// schedule entry. It always carries the full list so callers can render
// every issue at once.
type ConflictError struct {
	Conflicts []models.ScheduleConflict
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return "schedule conflicts detected"
}

// NewConflictError creates a ConflictError from a conflict list
func NewConflictError(conflicts []models.ScheduleConflict) *ConflictError {
	return &ConflictError{Conflicts: conflicts}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

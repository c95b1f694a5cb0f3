package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atikurshafi/cse327/internal/app/models/dto"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. All controllers
// delegate here so status codes and payload shapes stay uniform.
func HandleAPIError(c *gin.Context, err error) {
	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeConflict, "Schedule conflicts detected")
		errorDetail = errorDetail.WithDetails(conflictErr.Conflicts)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	switch {
	case isNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, capitalizedMessage(err))))

	case isAlreadyExists(err):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, capitalizedMessage(err))))

	case errors.Is(err, apperrors.ErrResourceInUse):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInUse, capitalizedMessage(err))))

	case errors.Is(err, apperrors.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, capitalizedMessage(err))))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// isNotFound reports whether err belongs to the not-found family
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrCourseNotFound) ||
		errors.Is(err, apperrors.ErrSectionNotFound) ||
		errors.Is(err, apperrors.ErrInstructorNotFound) ||
		errors.Is(err, apperrors.ErrRoomNotFound) ||
		errors.Is(err, apperrors.ErrTimeslotNotFound) ||
		errors.Is(err, apperrors.ErrScheduleNotFound)
}

// isAlreadyExists reports whether err belongs to the already-exists family
func isAlreadyExists(err error) bool {
	return errors.Is(err, apperrors.ErrResourceAlreadyExists) ||
		errors.Is(err, apperrors.ErrCourseAlreadyExists) ||
		errors.Is(err, apperrors.ErrSectionAlreadyExists) ||
		errors.Is(err, apperrors.ErrInstructorAlreadyExists) ||
		errors.Is(err, apperrors.ErrRoomAlreadyExists) ||
		errors.Is(err, apperrors.ErrTimeslotAlreadyExists) ||
		errors.Is(err, apperrors.ErrScheduleAlreadyExists)
}

// capitalizedMessage renders the sentinel message with a leading capital
// so client-facing text reads like a sentence
func capitalizedMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	if msg[0] >= 'a' && msg[0] <= 'z' {
		return string(msg[0]-'a'+'A') + msg[1:]
	}
	return msg
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/app/models/dto"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

func runHandler(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(ctx, err)

	var resp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	return recorder, &resp
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	recorder, resp := runHandler(t, apperrors.ErrCourseNotFound)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", recorder.Code)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("error = %+v, want code RES_001", resp.Error)
	}
	if resp.Error.Message != "Course not found" {
		t.Errorf("message = %q, want %q", resp.Error.Message, "Course not found")
	}
}

func TestHandleAPIErrorAlreadyExists(t *testing.T) {
	recorder, resp := runHandler(t, apperrors.ErrInstructorAlreadyExists)

	if recorder.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", recorder.Code)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Errorf("error = %+v, want code RES_002", resp.Error)
	}
}

func TestHandleAPIErrorResourceInUse(t *testing.T) {
	recorder, resp := runHandler(t, apperrors.ErrResourceInUse)

	if recorder.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", recorder.Code)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeResourceInUse {
		t.Errorf("error = %+v, want code RES_005", resp.Error)
	}
}

func TestHandleAPIErrorConflicts(t *testing.T) {
	conflicts := []models.ScheduleConflict{
		{Type: models.ConflictTypeInstructor, Message: "Instructor already has a class scheduled in timeslot ST1"},
		{Type: models.ConflictTypeRoom, Message: "Room already has a class scheduled in timeslot ST1"},
	}
	recorder, resp := runHandler(t, apperrors.NewConflictError(conflicts))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeConflict {
		t.Fatalf("error = %+v, want code RES_004", resp.Error)
	}
	if resp.Error.Message != "Schedule conflicts detected" {
		t.Errorf("message = %q", resp.Error.Message)
	}
	details, ok := resp.Error.Details.([]interface{})
	if !ok || len(details) != 2 {
		t.Errorf("details = %+v, want both conflicts attached", resp.Error.Details)
	}
}

func TestHandleAPIErrorValidation(t *testing.T) {
	recorder, resp := runHandler(t, apperrors.ErrValidationFailed)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeValidationFailed {
		t.Errorf("error = %+v, want code VAL_001", resp.Error)
	}
}

func TestHandleAPIErrorUnknown(t *testing.T) {
	recorder, resp := runHandler(t, http.ErrBodyNotAllowed)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", recorder.Code)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeInternalServer {
		t.Errorf("error = %+v, want code SRV_001", resp.Error)
	}
}

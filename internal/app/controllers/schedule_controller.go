package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atikurshafi/cse327/internal/app/models/dto"
	"github.com/atikurshafi/cse327/internal/app/services"
	"github.com/atikurshafi/cse327/internal/middleware"
)

// ScheduleController handles schedule-entry endpoints
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule handles schedule-entry creation
// @Summary Create a schedule entry
// @Description Assigns a course section to an instructor, room and timeslot after a full conflict check
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.ScheduleAssignmentRequest true "Schedule assignment"
// @Success 201 {object} dto.APIResponse{data=models.ScheduleView} "Schedule entry created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or schedule conflicts detected"
// @Failure 409 {object} dto.ErrorResponse "Identical assignment already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.ScheduleAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule := req.ToSchedule()
	view, err := c.scheduleService.CreateSchedule(ctx, &schedule)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      view,
		Timestamp: time.Now(),
	})
}

// CheckConflicts runs a conflict check without creating anything
// @Summary Check a schedule assignment for conflicts
// @Description Runs the conflict rules against a proposed assignment without persisting it
// @Tags schedules
// @Accept json
// @Produce json
// @Param excludeScheduleId query int false "Schedule ID to exclude from collision checks"
// @Param request body dto.ScheduleAssignmentRequest true "Proposed schedule assignment"
// @Success 200 {object} dto.APIResponse{data=dto.ConflictCheckResponse} "Conflict check completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/check-conflicts [post]
func (c *ScheduleController) CheckConflicts(ctx *gin.Context) {
	var req dto.ScheduleAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	var excludeID int64
	if raw := ctx.Query("excludeScheduleId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exclude schedule ID")
			errorDetail = errorDetail.WithDetails("excludeScheduleId must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		excludeID = parsed
	}

	conflicts, err := c.scheduleService.CheckConflicts(ctx, req.ToSchedule(), excludeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ConflictCheckResponse{
			HasConflicts: len(conflicts) > 0,
			Conflicts:    conflicts,
		},
		Timestamp: time.Now(),
	})
}

// GetScheduleByID retrieves a schedule entry by ID
// @Summary Get schedule entry by ID
// @Description Retrieves a specific schedule entry with all referenced entities resolved
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=models.ScheduleView} "Schedule entry retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetScheduleByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		errorDetail = errorDetail.WithDetails("Schedule ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	view, err := c.scheduleService.GetScheduleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      view,
		Timestamp: time.Now(),
	})
}

// GetAllSchedules retrieves all schedule entries
// @Summary Get all schedule entries
// @Description Retrieves the full schedule with all referenced entities resolved
// @Tags schedules
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleView} "Schedule entries retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (c *ScheduleController) GetAllSchedules(ctx *gin.Context) {
	views, err := c.scheduleService.GetAllSchedules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      views,
		Timestamp: time.Now(),
	})
}

// GetSchedulesByInstructor retrieves schedule entries for an instructor
// @Summary List an instructor's schedule
// @Description Retrieves all schedule entries assigned to a specific instructor
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleView} "Schedule entries retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/by-instructor/{id} [get]
func (c *ScheduleController) GetSchedulesByInstructor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID")
		errorDetail = errorDetail.WithDetails("Instructor ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	views, err := c.scheduleService.GetSchedulesByInstructor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      views,
		Timestamp: time.Now(),
	})
}

// GetSchedulesByRoom retrieves schedule entries for a room
// @Summary List a room's schedule
// @Description Retrieves all schedule entries assigned to a specific room
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleView} "Schedule entries retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/by-room/{id} [get]
func (c *ScheduleController) GetSchedulesByRoom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		errorDetail = errorDetail.WithDetails("Room ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	views, err := c.scheduleService.GetSchedulesByRoom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      views,
		Timestamp: time.Now(),
	})
}

// GetSchedulesByTimeslot retrieves schedule entries for a timeslot code
// @Summary List a timeslot's schedule
// @Description Retrieves all schedule entries in the timeslot with the given code
// @Tags schedules
// @Accept json
// @Produce json
// @Param code path string true "Timeslot code"
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleView} "Schedule entries retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid timeslot code"
// @Failure 404 {object} dto.ErrorResponse "Timeslot not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/by-timeslot/{code} [get]
func (c *ScheduleController) GetSchedulesByTimeslot(ctx *gin.Context) {
	views, err := c.scheduleService.GetSchedulesByTimeslotCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      views,
		Timestamp: time.Now(),
	})
}

// UpdateSchedule updates an existing schedule entry
// @Summary Update a schedule entry
// @Description Updates an existing schedule entry after re-running the conflict check, excluding the entry itself
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param request body dto.ScheduleAssignmentRequest true "Updated schedule assignment"
// @Success 200 {object} dto.APIResponse{data=models.ScheduleView} "Schedule entry updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or schedule conflicts detected"
// @Failure 404 {object} dto.ErrorResponse "Schedule entry not found"
// @Failure 409 {object} dto.ErrorResponse "Identical assignment already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		errorDetail = errorDetail.WithDetails("Schedule ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ScheduleAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule := req.ToSchedule()
	view, err := c.scheduleService.UpdateSchedule(ctx, id, &schedule)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      view,
		Timestamp: time.Now(),
	})
}

// DeleteSchedule deletes a schedule entry
// @Summary Delete a schedule entry
// @Description Deletes an existing schedule entry by its ID
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Schedule entry deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		errorDetail = errorDetail.WithDetails("Schedule ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Schedule entry deleted successfully"},
		Timestamp: time.Now(),
	})
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/app/models/dto"
	"github.com/atikurshafi/cse327/internal/app/services"
	"github.com/atikurshafi/cse327/internal/middleware"
)

// TimeslotController handles timeslot-related endpoints
type TimeslotController struct {
	timeslotService *services.TimeslotService
}

// NewTimeslotController creates a new TimeslotController
func NewTimeslotController(timeslotService *services.TimeslotService) *TimeslotController {
	return &TimeslotController{
		timeslotService: timeslotService,
	}
}

// CreateTimeslot handles timeslot creation
// @Summary Create a new timeslot
// @Description Creates a new timeslot with the provided information
// @Tags timeslots
// @Accept json
// @Produce json
// @Param request body dto.CreateTimeslotRequest true "Timeslot information"
// @Success 201 {object} dto.APIResponse{data=models.Timeslot} "Timeslot created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Timeslot code already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timeslots [post]
func (c *TimeslotController) CreateTimeslot(ctx *gin.Context) {
	var req dto.CreateTimeslotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	timeslot := models.Timeslot{
		Code:       req.Code,
		DayPattern: models.DayPattern(req.DayPattern),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	if err := c.timeslotService.CreateTimeslot(ctx, &timeslot); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      timeslot,
		Timestamp: time.Now(),
	})
}

// GetTimeslotByID retrieves a timeslot by ID
// @Summary Get timeslot by ID
// @Description Retrieves a specific timeslot by its ID
// @Tags timeslots
// @Accept json
// @Produce json
// @Param id path int true "Timeslot ID"
// @Success 200 {object} dto.APIResponse{data=models.Timeslot} "Timeslot retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid timeslot ID"
// @Failure 404 {object} dto.ErrorResponse "Timeslot not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timeslots/{id} [get]
func (c *TimeslotController) GetTimeslotByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid timeslot ID")
		errorDetail = errorDetail.WithDetails("Timeslot ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	timeslot, err := c.timeslotService.GetTimeslotByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      timeslot,
		Timestamp: time.Now(),
	})
}

// GetTimeslotByCode retrieves a timeslot by its code
// @Summary Get timeslot by code
// @Description Retrieves a specific timeslot by its code (e.g. ST1, MW3)
// @Tags timeslots
// @Accept json
// @Produce json
// @Param code path string true "Timeslot code"
// @Success 200 {object} dto.APIResponse{data=models.Timeslot} "Timeslot retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid timeslot code"
// @Failure 404 {object} dto.ErrorResponse "Timeslot not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timeslots/code/{code} [get]
func (c *TimeslotController) GetTimeslotByCode(ctx *gin.Context) {
	timeslot, err := c.timeslotService.GetTimeslotByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      timeslot,
		Timestamp: time.Now(),
	})
}

// GetAllTimeslots retrieves all timeslots
// @Summary Get all timeslots
// @Description Retrieves a list of all timeslots
// @Tags timeslots
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Timeslot} "Timeslots retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timeslots [get]
func (c *TimeslotController) GetAllTimeslots(ctx *gin.Context) {
	timeslots, err := c.timeslotService.GetAllTimeslots(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      timeslots,
		Timestamp: time.Now(),
	})
}

// UpdateTimeslot updates an existing timeslot
// @Summary Update a timeslot
// @Description Updates an existing timeslot with the provided information
// @Tags timeslots
// @Accept json
// @Produce json
// @Param id path int true "Timeslot ID"
// @Param request body dto.CreateTimeslotRequest true "Updated timeslot information"
// @Success 200 {object} dto.APIResponse{data=models.Timeslot} "Timeslot updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Timeslot not found"
// @Failure 409 {object} dto.ErrorResponse "Timeslot code already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timeslots/{id} [put]
func (c *TimeslotController) UpdateTimeslot(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid timeslot ID")
		errorDetail = errorDetail.WithDetails("Timeslot ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateTimeslotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	timeslot := models.Timeslot{
		ID:         id,
		Code:       req.Code,
		DayPattern: models.DayPattern(req.DayPattern),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	if err := c.timeslotService.UpdateTimeslot(ctx, &timeslot); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      timeslot,
		Timestamp: time.Now(),
	})
}

// DeleteTimeslot deletes a timeslot
// @Summary Delete a timeslot
// @Description Deletes an existing timeslot by its ID. Fails if any schedule still references it.
// @Tags timeslots
// @Accept json
// @Produce json
// @Param id path int true "Timeslot ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Timeslot deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid timeslot ID"
// @Failure 404 {object} dto.ErrorResponse "Timeslot not found"
// @Failure 409 {object} dto.ErrorResponse "Timeslot is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timeslots/{id} [delete]
func (c *TimeslotController) DeleteTimeslot(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid timeslot ID")
		errorDetail = errorDetail.WithDetails("Timeslot ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.timeslotService.DeleteTimeslot(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Timeslot deleted successfully"},
		Timestamp: time.Now(),
	})
}

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

// RoomController handles room-related endpoints
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// CreateRoom handles room creation
// @Summary Create a new room
// @Description Creates a new room with the provided information
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=models.Room} "Room created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Room number already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	room := models.Room{
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		Type:       models.RoomType(req.Type),
	}

	if err := c.roomService.CreateRoom(ctx, &room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// GetRoomByID retrieves a room by ID
// @Summary Get room by ID
// @Description Retrieves a specific room by its ID
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		errorDetail = errorDetail.WithDetails("Room ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// GetAllRooms retrieves all rooms
// @Summary Get all rooms
// @Description Retrieves a list of all rooms
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [get]
func (c *RoomController) GetAllRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetAllRooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rooms,
		Timestamp: time.Now(),
	})
}

// UpdateRoom updates an existing room
// @Summary Update a room
// @Description Updates an existing room with the provided information
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.CreateRoomRequest true "Updated room information"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room number already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		errorDetail = errorDetail.WithDetails("Room ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	room := models.Room{
		ID:         id,
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		Type:       models.RoomType(req.Type),
	}

	if err := c.roomService.UpdateRoom(ctx, &room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// DeleteRoom deletes a room
// @Summary Delete a room
// @Description Deletes an existing room by its ID. Fails if any schedule still references it.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Room deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		errorDetail = errorDetail.WithDetails("Room ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.roomService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Room deleted successfully"},
		Timestamp: time.Now(),
	})
}

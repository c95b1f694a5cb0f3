package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
	"github.com/atikurshafi/cse327/internal/pkg/validation"
)

// roomStore is the persistence surface the room service needs
type roomStore interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetAll(ctx context.Context) ([]*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
}

// RoomService handles room-related operations
type RoomService struct {
	roomRepo roomStore
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo roomStore) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

// validateRoom validates and normalizes room data before store
// operations. Room numbers are stored upper-cased.
func validateRoom(room *models.Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", apperrors.ErrValidationFailed)
	}

	room.RoomNumber = strings.ToUpper(strings.TrimSpace(room.RoomNumber))
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.NewNumericValidation(room.Capacity).WithMin(1).Validate() {
		return fmt.Errorf("%w: room capacity must be a positive integer", apperrors.ErrValidationFailed)
	}

	if room.Type == "" {
		room.Type = models.RoomTypeTheory
	}
	if !room.Type.Valid() {
		return fmt.Errorf("%w: room type must be THEORY or LAB", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateRoom creates a new room
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	return s.roomRepo.Create(ctx, room)
}

// GetRoomByID retrieves a room by ID
func (s *RoomService) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid room ID", apperrors.ErrValidationFailed)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	return room, nil
}

// GetAllRooms retrieves all rooms
func (s *RoomService) GetAllRooms(ctx context.Context) ([]*models.Room, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}

	return rooms, nil
}

// UpdateRoom updates an existing room
func (s *RoomService) UpdateRoom(ctx context.Context, room *models.Room) error {
	if room == nil || room.ID <= 0 {
		return fmt.Errorf("%w: invalid room ID", apperrors.ErrValidationFailed)
	}
	if err := validateRoom(room); err != nil {
		return err
	}

	return s.roomRepo.Update(ctx, room)
}

// DeleteRoom deletes a room by ID
func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid room ID", apperrors.ErrValidationFailed)
	}

	return s.roomRepo.Delete(ctx, id)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

type fakeRoomStore struct {
	rooms  map[int64]models.Room
	nextID int64
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: make(map[int64]models.Room)}
}

func (f *fakeRoomStore) Create(_ context.Context, room *models.Room) error {
	for _, r := range f.rooms {
		if r.RoomNumber == room.RoomNumber {
			return apperrors.ErrRoomAlreadyExists
		}
	}
	f.nextID++
	room.ID = f.nextID
	f.rooms[room.ID] = *room
	return nil
}

func (f *fakeRoomStore) GetByID(_ context.Context, id int64) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRoomStore) GetAll(_ context.Context) ([]*models.Room, error) {
	all := make([]*models.Room, 0, len(f.rooms))
	for id := int64(1); id <= f.nextID; id++ {
		if r, ok := f.rooms[id]; ok {
			room := r
			all = append(all, &room)
		}
	}
	return all, nil
}

func (f *fakeRoomStore) Update(_ context.Context, room *models.Room) error {
	if _, ok := f.rooms[room.ID]; !ok {
		return apperrors.ErrRoomNotFound
	}
	f.rooms[room.ID] = *room
	return nil
}

func (f *fakeRoomStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return apperrors.ErrRoomNotFound
	}
	delete(f.rooms, id)
	return nil
}

func TestCreateRoomNormalizesNumber(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())

	room := models.Room{RoomNumber: " nac401 ", Capacity: 40, Type: models.RoomTypeTheory}
	if err := svc.CreateRoom(context.Background(), &room); err != nil {
		t.Fatalf("CreateRoom returned error: %v", err)
	}
	if room.RoomNumber != "NAC401" {
		t.Errorf("roomNumber = %q, want NAC401", room.RoomNumber)
	}
}

func TestCreateRoomRejectsNonPositiveCapacity(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())

	for _, capacity := range []int{0, -5} {
		room := models.Room{RoomNumber: "NAC401", Capacity: capacity, Type: models.RoomTypeTheory}
		err := svc.CreateRoom(context.Background(), &room)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("capacity %d: error = %v, want ErrValidationFailed", capacity, err)
		}
	}
}

func TestCreateRoomDefaultsToTheory(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())

	room := models.Room{RoomNumber: "NAC401", Capacity: 40}
	if err := svc.CreateRoom(context.Background(), &room); err != nil {
		t.Fatalf("CreateRoom returned error: %v", err)
	}
	if room.Type != models.RoomTypeTheory {
		t.Errorf("type = %s, want THEORY", room.Type)
	}
}

func TestCreateRoomRejectsUnknownType(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())

	// CLUB is a course type, not a room type
	room := models.Room{RoomNumber: "NAC401", Capacity: 40, Type: "CLUB"}
	err := svc.CreateRoom(context.Background(), &room)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())

	first := models.Room{RoomNumber: "NAC401", Capacity: 40}
	if err := svc.CreateRoom(context.Background(), &first); err != nil {
		t.Fatalf("seeding room: %v", err)
	}
	second := models.Room{RoomNumber: "nac401", Capacity: 30}
	err := svc.CreateRoom(context.Background(), &second)
	if !errors.Is(err, apperrors.ErrRoomAlreadyExists) {
		t.Fatalf("error = %v, want ErrRoomAlreadyExists", err)
	}
}

func TestGetRoomByIDNotFound(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())

	_, err := svc.GetRoomByID(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Fatalf("error = %v, want ErrRoomNotFound", err)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

type fakeTimeslotStore struct {
	timeslots map[int64]models.Timeslot
	nextID    int64
}

func newFakeTimeslotStore() *fakeTimeslotStore {
	return &fakeTimeslotStore{timeslots: make(map[int64]models.Timeslot)}
}

func (f *fakeTimeslotStore) Create(_ context.Context, timeslot *models.Timeslot) error {
	for _, t := range f.timeslots {
		if t.Code == timeslot.Code {
			return apperrors.ErrTimeslotAlreadyExists
		}
	}
	f.nextID++
	timeslot.ID = f.nextID
	f.timeslots[timeslot.ID] = *timeslot
	return nil
}

func (f *fakeTimeslotStore) GetByID(_ context.Context, id int64) (*models.Timeslot, error) {
	t, ok := f.timeslots[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTimeslotStore) GetByCode(_ context.Context, code string) (*models.Timeslot, error) {
	for _, t := range f.timeslots {
		if t.Code == code {
			timeslot := t
			return &timeslot, nil
		}
	}
	return nil, nil
}

func (f *fakeTimeslotStore) GetAll(_ context.Context) ([]*models.Timeslot, error) {
	all := make([]*models.Timeslot, 0, len(f.timeslots))
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.timeslots[id]; ok {
			timeslot := t
			all = append(all, &timeslot)
		}
	}
	return all, nil
}

func (f *fakeTimeslotStore) Update(_ context.Context, timeslot *models.Timeslot) error {
	if _, ok := f.timeslots[timeslot.ID]; !ok {
		return apperrors.ErrTimeslotNotFound
	}
	f.timeslots[timeslot.ID] = *timeslot
	return nil
}

func (f *fakeTimeslotStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.timeslots[id]; !ok {
		return apperrors.ErrTimeslotNotFound
	}
	delete(f.timeslots, id)
	return nil
}

func TestCreateTimeslotNormalizesCode(t *testing.T) {
	svc := NewTimeslotService(newFakeTimeslotStore())

	timeslot := models.Timeslot{Code: " st1 ", DayPattern: models.DayPatternST, StartTime: "08:00", EndTime: "09:30"}
	if err := svc.CreateTimeslot(context.Background(), &timeslot); err != nil {
		t.Fatalf("CreateTimeslot returned error: %v", err)
	}
	if timeslot.Code != "ST1" {
		t.Errorf("code = %q, want ST1", timeslot.Code)
	}
}

func TestCreateTimeslotRejectsUnknownDayPattern(t *testing.T) {
	svc := NewTimeslotService(newFakeTimeslotStore())

	timeslot := models.Timeslot{Code: "XX1", DayPattern: "XX", StartTime: "08:00", EndTime: "09:30"}
	err := svc.CreateTimeslot(context.Background(), &timeslot)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestCreateTimeslotRejectsBadTimes(t *testing.T) {
	svc := NewTimeslotService(newFakeTimeslotStore())

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"bad format", "8:00", "09:30"},
		{"out of range hour", "25:00", "26:30"},
		{"out of range minute", "08:61", "09:30"},
		{"not a time", "morning", "noon"},
		{"start equals end", "08:00", "08:00"},
		{"start after end", "09:30", "08:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			timeslot := models.Timeslot{Code: "ST1", DayPattern: models.DayPatternST, StartTime: tc.start, EndTime: tc.end}
			err := svc.CreateTimeslot(context.Background(), &timeslot)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestCreateTimeslotDuplicateCode(t *testing.T) {
	svc := NewTimeslotService(newFakeTimeslotStore())

	first := models.Timeslot{Code: "ST1", DayPattern: models.DayPatternST, StartTime: "08:00", EndTime: "09:30"}
	if err := svc.CreateTimeslot(context.Background(), &first); err != nil {
		t.Fatalf("seeding timeslot: %v", err)
	}
	second := models.Timeslot{Code: "st1", DayPattern: models.DayPatternST, StartTime: "09:40", EndTime: "11:10"}
	err := svc.CreateTimeslot(context.Background(), &second)
	if !errors.Is(err, apperrors.ErrTimeslotAlreadyExists) {
		t.Fatalf("error = %v, want ErrTimeslotAlreadyExists", err)
	}
}

func TestGetTimeslotByCode(t *testing.T) {
	svc := NewTimeslotService(newFakeTimeslotStore())

	timeslot := models.Timeslot{Code: "MW3", DayPattern: models.DayPatternMW, StartTime: "11:20", EndTime: "12:50"}
	if err := svc.CreateTimeslot(context.Background(), &timeslot); err != nil {
		t.Fatalf("seeding timeslot: %v", err)
	}

	found, err := svc.GetTimeslotByCode(context.Background(), "mw3")
	if err != nil {
		t.Fatalf("GetTimeslotByCode returned error: %v", err)
	}
	if found.ID != timeslot.ID {
		t.Errorf("found.ID = %d, want %d", found.ID, timeslot.ID)
	}

	if _, err := svc.GetTimeslotByCode(context.Background(), "ZZ9"); !errors.Is(err, apperrors.ErrTimeslotNotFound) {
		t.Errorf("unknown code error = %v, want ErrTimeslotNotFound", err)
	}
}

func TestGetTimeslotByIDNotFound(t *testing.T) {
	svc := NewTimeslotService(newFakeTimeslotStore())

	_, err := svc.GetTimeslotByID(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrTimeslotNotFound) {
		t.Fatalf("error = %v, want ErrTimeslotNotFound", err)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

type fakeInstructorStore struct {
	instructors map[int64]models.Instructor
	nextID      int64
}

func newFakeInstructorStore() *fakeInstructorStore {
	return &fakeInstructorStore{instructors: make(map[int64]models.Instructor)}
}

func (f *fakeInstructorStore) Create(_ context.Context, instructor *models.Instructor) error {
	for _, i := range f.instructors {
		if i.Email == instructor.Email {
			return apperrors.ErrInstructorAlreadyExists
		}
	}
	f.nextID++
	instructor.ID = f.nextID
	f.instructors[instructor.ID] = *instructor
	return nil
}

func (f *fakeInstructorStore) GetByID(_ context.Context, id int64) (*models.Instructor, error) {
	i, ok := f.instructors[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (f *fakeInstructorStore) GetAll(_ context.Context) ([]*models.Instructor, error) {
	all := make([]*models.Instructor, 0, len(f.instructors))
	for id := int64(1); id <= f.nextID; id++ {
		if i, ok := f.instructors[id]; ok {
			instructor := i
			all = append(all, &instructor)
		}
	}
	return all, nil
}

func (f *fakeInstructorStore) Update(_ context.Context, instructor *models.Instructor) error {
	if _, ok := f.instructors[instructor.ID]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	f.instructors[instructor.ID] = *instructor
	return nil
}

func (f *fakeInstructorStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.instructors[id]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	delete(f.instructors, id)
	return nil
}

func TestCreateInstructorNormalizesEmail(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	instructor := models.Instructor{Name: "Dr. Smith", Email: "  Smith@Univ.EDU "}
	if err := svc.CreateInstructor(context.Background(), &instructor); err != nil {
		t.Fatalf("CreateInstructor returned error: %v", err)
	}
	if instructor.Email != "smith@univ.edu" {
		t.Errorf("email = %q, want smith@univ.edu", instructor.Email)
	}
}

func TestCreateInstructorDefaultsToFaculty(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	instructor := models.Instructor{Name: "Dr. Smith", Email: "smith@univ.edu"}
	if err := svc.CreateInstructor(context.Background(), &instructor); err != nil {
		t.Fatalf("CreateInstructor returned error: %v", err)
	}
	if instructor.Type != models.InstructorTypeFaculty {
		t.Errorf("type = %s, want FACULTY", instructor.Type)
	}
}

func TestCreateInstructorClubType(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	instructor := models.Instructor{Name: "Computer Club", Email: "cc@univ.edu", Type: models.InstructorTypeClub}
	if err := svc.CreateInstructor(context.Background(), &instructor); err != nil {
		t.Fatalf("CreateInstructor returned error: %v", err)
	}
	if instructor.Type != models.InstructorTypeClub {
		t.Errorf("type = %s, want CLUB", instructor.Type)
	}
}

func TestCreateInstructorRejectsBadEmail(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	for _, email := range []string{"", "not-an-email", "missing@tld"} {
		instructor := models.Instructor{Name: "Dr. Smith", Email: email}
		err := svc.CreateInstructor(context.Background(), &instructor)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("email %q: error = %v, want ErrValidationFailed", email, err)
		}
	}
}

func TestCreateInstructorRejectsShortName(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	instructor := models.Instructor{Name: "X", Email: "x@univ.edu"}
	err := svc.CreateInstructor(context.Background(), &instructor)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestCreateInstructorDuplicateEmail(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	first := models.Instructor{Name: "Dr. Smith", Email: "smith@univ.edu"}
	if err := svc.CreateInstructor(context.Background(), &first); err != nil {
		t.Fatalf("seeding instructor: %v", err)
	}
	second := models.Instructor{Name: "Other Smith", Email: "SMITH@univ.edu"}
	err := svc.CreateInstructor(context.Background(), &second)
	if !errors.Is(err, apperrors.ErrInstructorAlreadyExists) {
		t.Fatalf("error = %v, want ErrInstructorAlreadyExists", err)
	}
}

func TestGetInstructorByIDNotFound(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	_, err := svc.GetInstructorByID(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrInstructorNotFound) {
		t.Fatalf("error = %v, want ErrInstructorNotFound", err)
	}
}

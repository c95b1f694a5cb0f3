package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

// fakeCourseStore is a map-backed courseStore with the repository's
// duplicate and not-found semantics
type fakeCourseStore struct {
	courses map[int64]models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]models.Course)}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, c := range f.courses {
		if c.Code == course.Code {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(f.courses))
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.courses[id]; ok {
			course := c
			all = append(all, &course)
		}
	}
	return all, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func TestCreateCourseNormalizesCode(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	course := models.Course{Code: "  cse327 ", Name: " Software Engineering ", Type: models.CourseTypeTheory}
	if err := svc.CreateCourse(context.Background(), &course); err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if course.Code != "CSE327" {
		t.Errorf("code = %q, want CSE327", course.Code)
	}
	if course.Name != "Software Engineering" {
		t.Errorf("name = %q, want trimmed", course.Name)
	}
}

func TestCreateCourseDefaultsToTheory(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	course := models.Course{Code: "CSE327", Name: "Software Engineering"}
	if err := svc.CreateCourse(context.Background(), &course); err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if course.Type != models.CourseTypeTheory {
		t.Errorf("type = %s, want THEORY", course.Type)
	}
}

func TestCreateCourseRejectsUnknownType(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	course := models.Course{Code: "CSE327", Name: "Software Engineering", Type: "SEMINAR"}
	err := svc.CreateCourse(context.Background(), &course)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	first := models.Course{Code: "CSE327", Name: "Software Engineering"}
	if err := svc.CreateCourse(context.Background(), &first); err != nil {
		t.Fatalf("seeding course: %v", err)
	}

	// Same code in different case collides after normalization
	second := models.Course{Code: "cse327", Name: "Another"}
	err := svc.CreateCourse(context.Background(), &second)
	if !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
		t.Fatalf("error = %v, want ErrCourseAlreadyExists", err)
	}
}

func TestGetCourseByIDNotFound(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	_, err := svc.GetCourseByID(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("error = %v, want ErrCourseNotFound", err)
	}
}

func TestUpdateCourseRequiresID(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	course := models.Course{Code: "CSE327", Name: "Software Engineering"}
	err := svc.UpdateCourse(context.Background(), &course)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestDeleteCourse(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	course := models.Course{Code: "CSE327", Name: "Software Engineering"}
	if err := svc.CreateCourse(context.Background(), &course); err != nil {
		t.Fatalf("seeding course: %v", err)
	}
	if err := svc.DeleteCourse(context.Background(), course.ID); err != nil {
		t.Fatalf("DeleteCourse returned error: %v", err)
	}
	if err := svc.DeleteCourse(context.Background(), course.ID); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("second delete error = %v, want ErrCourseNotFound", err)
	}
}

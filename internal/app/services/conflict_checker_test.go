package services

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/atikurshafi/cse327/internal/app/models"
)

// seedStore builds a store with the standard fixture: a theory course in
// a theory room, a lab course, a club activity, two rooms and two
// timeslots.
func seedStore() *memStore {
	store := newMemStore()

	store.addCourse(models.Course{ID: 1, Code: "CSE101", Name: "Intro to CS", Type: models.CourseTypeTheory})
	store.addCourse(models.Course{ID: 2, Code: "CSE101L", Name: "Intro to CS Lab", Type: models.CourseTypeLab})
	store.addCourse(models.Course{ID: 3, Code: "CLUB_MTG", Name: "General Meeting", Type: models.CourseTypeClub})

	store.addSection(models.Section{ID: 1, CourseID: 1, SectionNumber: "1"})
	store.addSection(models.Section{ID: 2, CourseID: 2, SectionNumber: "1"})

	store.addInstructor(models.Instructor{ID: 1, Name: "Dr. Smith", Email: "smith@univ.edu", Type: models.InstructorTypeFaculty})
	store.addInstructor(models.Instructor{ID: 2, Name: "Prof. Johnson", Email: "johnson@univ.edu", Type: models.InstructorTypeFaculty})

	store.addRoom(models.Room{ID: 1, RoomNumber: "R1", Capacity: 40, Type: models.RoomTypeTheory})
	store.addRoom(models.Room{ID: 2, RoomNumber: "R2", Capacity: 30, Type: models.RoomTypeLab})

	store.addTimeslot(models.Timeslot{ID: 1, Code: "ST1", DayPattern: models.DayPatternST, StartTime: "08:00", EndTime: "09:30"})
	store.addTimeslot(models.Timeslot{ID: 2, Code: "MW1", DayPattern: models.DayPatternMW, StartTime: "08:00", EndTime: "09:30"})

	return store
}

func newChecker(store *memStore) *ConflictChecker {
	return NewConflictChecker(store, courseStoreAdapter{store}, roomStoreAdapter{store})
}

func TestCheckAllNoConflicts(t *testing.T) {
	store := seedStore()
	checker := newChecker(store)

	candidate := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if conflicts == nil {
		t.Fatal("CheckAll returned nil slice; want empty slice")
	}
	if len(conflicts) != 0 {
		t.Fatalf("got %d conflicts, want 0: %+v", len(conflicts), conflicts)
	}
}

func TestCheckAllInstructorConflict(t *testing.T) {
	store := seedStore()
	existing := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	if err := store.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	checker := newChecker(store)

	// Same instructor and timeslot, different room
	candidate := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 2, TimeslotID: 1}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}

	var found *models.ScheduleConflict
	for i := range conflicts {
		if conflicts[i].Type == models.ConflictTypeInstructor {
			found = &conflicts[i]
		}
	}
	if found == nil {
		t.Fatalf("no instructor conflict in %+v", conflicts)
	}
	if want := "Instructor already has a class scheduled in timeslot ST1"; found.Message != want {
		t.Errorf("message = %q, want %q", found.Message, want)
	}
	if found.ConflictingSchedule == nil || found.ConflictingSchedule.ID != existing.ID {
		t.Errorf("conflicting schedule not attached: %+v", found.ConflictingSchedule)
	}
}

func TestCheckAllRoomConflict(t *testing.T) {
	store := seedStore()
	existing := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	if err := store.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	checker := newChecker(store)

	// Same room and timeslot, different instructor
	candidate := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 2, RoomID: 1, TimeslotID: 1}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1: %+v", len(conflicts), conflicts)
	}
	if conflicts[0].Type != models.ConflictTypeRoom {
		t.Errorf("type = %s, want %s", conflicts[0].Type, models.ConflictTypeRoom)
	}
	if want := "Room already has a class scheduled in timeslot ST1"; conflicts[0].Message != want {
		t.Errorf("message = %q, want %q", conflicts[0].Message, want)
	}
}

func TestCheckAllDifferentTimeslotNoCollision(t *testing.T) {
	store := seedStore()
	existing := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	if err := store.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	checker := newChecker(store)

	// Same instructor and room but in MW1 instead of ST1
	candidate := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 2}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Fatalf("got %d conflicts, want 0: %+v", len(conflicts), conflicts)
	}
}

func TestCheckAllCollectsEveryViolation(t *testing.T) {
	store := seedStore()
	existing := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	if err := store.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	checker := newChecker(store)

	// Lab course with the booked instructor, in the booked theory room
	candidate := models.Schedule{CourseID: 2, SectionID: 2, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(conflicts) != 3 {
		t.Fatalf("got %d conflicts, want 3: %+v", len(conflicts), conflicts)
	}
	wantTypes := []models.ConflictType{
		models.ConflictTypeInstructor,
		models.ConflictTypeRoom,
		models.ConflictTypeLabRoomMismatch,
	}
	for i, want := range wantTypes {
		if conflicts[i].Type != want {
			t.Errorf("conflicts[%d].Type = %s, want %s", i, conflicts[i].Type, want)
		}
	}
}

func TestCheckAllLabRoomMismatch(t *testing.T) {
	store := seedStore()
	checker := newChecker(store)

	candidate := models.Schedule{CourseID: 2, SectionID: 2, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1: %+v", len(conflicts), conflicts)
	}
	if conflicts[0].Type != models.ConflictTypeLabRoomMismatch {
		t.Errorf("type = %s, want %s", conflicts[0].Type, models.ConflictTypeLabRoomMismatch)
	}
	want := "Lab course CSE101L must be assigned to a LAB room, but R1 is a THEORY room"
	if conflicts[0].Message != want {
		t.Errorf("message = %q, want %q", conflicts[0].Message, want)
	}
}

func TestCheckAllTheoryRoomMismatch(t *testing.T) {
	store := seedStore()
	checker := newChecker(store)

	candidate := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 2, TimeslotID: 1}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1: %+v", len(conflicts), conflicts)
	}
	want := "Theory course CSE101 must be assigned to a THEORY room, but R2 is a LAB room"
	if conflicts[0].Message != want {
		t.Errorf("message = %q, want %q", conflicts[0].Message, want)
	}
}

func TestCheckAllClubCourseAnyRoom(t *testing.T) {
	store := seedStore()
	checker := newChecker(store)

	for _, roomID := range []int64{1, 2} {
		candidate := models.Schedule{CourseID: 3, SectionID: 1, InstructorID: 1, RoomID: roomID, TimeslotID: 1}
		conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
		if err != nil {
			t.Fatalf("CheckAll returned error: %v", err)
		}
		if len(conflicts) != 0 {
			t.Errorf("club course in room %d: got %d conflicts, want 0: %+v", roomID, len(conflicts), conflicts)
		}
	}
}

func TestCheckAllUnresolvableReferences(t *testing.T) {
	store := seedStore()
	checker := newChecker(store)

	candidate := models.Schedule{CourseID: 99, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1: %+v", len(conflicts), conflicts)
	}
	if conflicts[0].Type != models.ConflictTypeInvalidData {
		t.Errorf("type = %s, want %s", conflicts[0].Type, models.ConflictTypeInvalidData)
	}
	if want := "Course or Room not found"; conflicts[0].Message != want {
		t.Errorf("message = %q, want %q", conflicts[0].Message, want)
	}
}

func TestCheckAllExcludesOwnEntry(t *testing.T) {
	store := seedStore()
	existing := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	if err := store.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	checker := newChecker(store)

	conflicts, err := checker.CheckAll(context.Background(), existing, existing.ID)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Fatalf("entry conflicts with itself: %+v", conflicts)
	}
}

func TestCheckAllIsReadOnlyAndStable(t *testing.T) {
	store := seedStore()
	existing := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	if err := store.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	checker := newChecker(store)

	candidate := models.Schedule{CourseID: 2, SectionID: 2, InstructorID: 1, RoomID: 1, TimeslotID: 1}
	first, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("first CheckAll returned error: %v", err)
	}
	second, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("second CheckAll returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated checks diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if len(store.entries) != 1 {
		t.Errorf("checker mutated the store: %d entries", len(store.entries))
	}
}

func TestConflictMessagesNameTimeslotCode(t *testing.T) {
	store := seedStore()
	existing := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 1, TimeslotID: 2}
	if err := store.Create(context.Background(), &existing); err != nil {
		t.Fatalf("seeding schedule: %v", err)
	}
	checker := newChecker(store)

	candidate := models.Schedule{CourseID: 1, SectionID: 1, InstructorID: 1, RoomID: 2, TimeslotID: 2}
	conflicts, err := checker.CheckAll(context.Background(), candidate, 0)
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	foundTimeslot := false
	for _, c := range conflicts {
		if c.Type == models.ConflictTypeInstructor && strings.Contains(c.Message, "MW1") {
			foundTimeslot = true
		}
	}
	if !foundTimeslot {
		t.Errorf("instructor conflict message does not name timeslot MW1: %+v", conflicts)
	}
}

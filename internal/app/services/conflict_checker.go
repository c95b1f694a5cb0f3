package services

import (
	"context"
	"fmt"

	"github.com/atikurshafi/cse327/internal/app/models"
)

// scheduleCollisionStore finds existing schedule entries that collide with
// a candidate on instructor or room within a timeslot. excludeID skips one
// entry (0 means none), so re-checking an entry during an update does not
// flag a conflict against itself.
type scheduleCollisionStore interface {
	FindCollisionByInstructor(ctx context.Context, instructorID, timeslotID, excludeID int64) (*models.ScheduleView, error)
	FindCollisionByRoom(ctx context.Context, roomID, timeslotID, excludeID int64) (*models.ScheduleView, error)
}

// courseGetter resolves a course by ID, nil when absent
type courseGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// roomGetter resolves a room by ID, nil when absent
type roomGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Room, error)
}

// ConflictChecker evaluates the scheduling rules against the current
// state of the store. It reads only and never mutates.
type ConflictChecker struct {
	schedules scheduleCollisionStore
	courses   courseGetter
	rooms     roomGetter
}

// NewConflictChecker creates a new conflict checker
func NewConflictChecker(schedules scheduleCollisionStore, courses courseGetter, rooms roomGetter) *ConflictChecker {
	return &ConflictChecker{
		schedules: schedules,
		courses:   courses,
		rooms:     rooms,
	}
}

// CheckAll evaluates every rule for a candidate schedule entry and
// collects all violations. No rule short-circuits the others, so the
// caller always gets the complete list. An empty list means the candidate
// is valid.
func (c *ConflictChecker) CheckAll(ctx context.Context, candidate models.Schedule, excludeScheduleID int64) ([]models.ScheduleConflict, error) {
	conflicts := make([]models.ScheduleConflict, 0)

	instructorConflict, err := c.checkInstructorConflict(ctx, candidate, excludeScheduleID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor conflict: %w", err)
	}
	if instructorConflict != nil {
		conflicts = append(conflicts, *instructorConflict)
	}

	roomConflict, err := c.checkRoomConflict(ctx, candidate, excludeScheduleID)
	if err != nil {
		return nil, fmt.Errorf("error checking room conflict: %w", err)
	}
	if roomConflict != nil {
		conflicts = append(conflicts, *roomConflict)
	}

	typeConflict, err := c.checkRoomTypeMatch(ctx, candidate.CourseID, candidate.RoomID)
	if err != nil {
		return nil, fmt.Errorf("error checking room type match: %w", err)
	}
	if typeConflict != nil {
		conflicts = append(conflicts, *typeConflict)
	}

	return conflicts, nil
}

// checkInstructorConflict reports a conflict when another entry books the
// same instructor in the same timeslot.
func (c *ConflictChecker) checkInstructorConflict(ctx context.Context, candidate models.Schedule, excludeScheduleID int64) (*models.ScheduleConflict, error) {
	collision, err := c.schedules.FindCollisionByInstructor(ctx, candidate.InstructorID, candidate.TimeslotID, excludeScheduleID)
	if err != nil {
		return nil, err
	}

	if collision == nil {
		return nil, nil
	}

	return &models.ScheduleConflict{
		Type:                models.ConflictTypeInstructor,
		Message:             fmt.Sprintf("Instructor already has a class scheduled in timeslot %s", collision.Timeslot.Code),
		ConflictingSchedule: collision,
	}, nil
}

// checkRoomConflict reports a conflict when another entry books the same
// room in the same timeslot.
func (c *ConflictChecker) checkRoomConflict(ctx context.Context, candidate models.Schedule, excludeScheduleID int64) (*models.ScheduleConflict, error) {
	collision, err := c.schedules.FindCollisionByRoom(ctx, candidate.RoomID, candidate.TimeslotID, excludeScheduleID)
	if err != nil {
		return nil, err
	}

	if collision == nil {
		return nil, nil
	}

	return &models.ScheduleConflict{
		Type:                models.ConflictTypeRoom,
		Message:             fmt.Sprintf("Room already has a class scheduled in timeslot %s", collision.Timeslot.Code),
		ConflictingSchedule: collision,
	}, nil
}

// checkRoomTypeMatch reports a conflict when a LAB course is placed in a
// non-LAB room or a THEORY course in a non-THEORY room. CLUB courses are
// exempt. When the course or room cannot be resolved the type comparison
// is skipped and an INVALID_DATA conflict is reported instead.
func (c *ConflictChecker) checkRoomTypeMatch(ctx context.Context, courseID, roomID int64) (*models.ScheduleConflict, error) {
	course, err := c.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	room, err := c.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if course == nil || room == nil {
		return &models.ScheduleConflict{
			Type:    models.ConflictTypeInvalidData,
			Message: "Course or Room not found",
		}, nil
	}

	switch course.Type {
	case models.CourseTypeLab:
		if room.Type != models.RoomTypeLab {
			return &models.ScheduleConflict{
				Type: models.ConflictTypeLabRoomMismatch,
				Message: fmt.Sprintf("Lab course %s must be assigned to a LAB room, but %s is a %s room",
					course.Code, room.RoomNumber, room.Type),
			}, nil
		}
	case models.CourseTypeTheory:
		if room.Type != models.RoomTypeTheory {
			return &models.ScheduleConflict{
				Type: models.ConflictTypeTheoryRoomMismatch,
				Message: fmt.Sprintf("Theory course %s must be assigned to a THEORY room, but %s is a %s room",
					course.Code, room.RoomNumber, room.Type),
			}, nil
		}
	case models.CourseTypeClub:
		// Club courses may use any room
	}

	return nil, nil
}

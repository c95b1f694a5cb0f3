package models

// Schedule binds one course section, instructor and room to a timeslot.
// The full (course_id, section_id, instructor_id, room_id, timeslot_id)
// tuple is unique.
type Schedule struct {
	ID           int64 `json:"id" db:"id" example:"1"`
	CourseID     int64 `json:"courseId" db:"course_id" example:"1"`
	SectionID    int64 `json:"sectionId" db:"section_id" example:"1"`
	InstructorID int64 `json:"instructorId" db:"instructor_id" example:"1"`
	RoomID       int64 `json:"roomId" db:"room_id" example:"1"`
	TimeslotID   int64 `json:"timeslotId" db:"timeslot_id" example:"1"`
}

// ScheduleView is the denormalized, read-only form of a schedule entry
// with every referenced entity resolved for display.
type ScheduleView struct {
	ID         int64      `json:"id" example:"1"`
	Course     Course     `json:"course"`
	Section    Section    `json:"section"`
	Instructor Instructor `json:"instructor"`
	Room       Room       `json:"room"`
	Timeslot   Timeslot   `json:"timeslot"`
}

// ConflictType tags a detected scheduling rule violation.
type ConflictType string

// Conflict type constants
const (
	ConflictTypeInstructor         ConflictType = "INSTRUCTOR_CONFLICT"
	ConflictTypeRoom               ConflictType = "ROOM_CONFLICT"
	ConflictTypeLabRoomMismatch    ConflictType = "LAB_ROOM_MISMATCH"
	ConflictTypeTheoryRoomMismatch ConflictType = "THEORY_ROOM_MISMATCH"
	ConflictTypeInvalidData        ConflictType = "INVALID_DATA"
)

// ScheduleConflict describes a single rule violation for a candidate
// schedule entry. Collision conflicts carry the existing entry they
// collide with.
type ScheduleConflict struct {
	Type                ConflictType  `json:"type" example:"INSTRUCTOR_CONFLICT"`
	Message             string        `json:"message" example:"Instructor already has a class scheduled in timeslot ST1"`
	ConflictingSchedule *ScheduleView `json:"conflictingSchedule,omitempty"`
}

package dto

import "github.com/atikurshafi/cse327/internal/app/models"

// ScheduleAssignmentRequest is the payload for creating or updating a
// schedule entry.
type ScheduleAssignmentRequest struct {
	CourseID     int64 `json:"courseId" binding:"required,gt=0" example:"1"`
	SectionID    int64 `json:"sectionId" binding:"required,gt=0" example:"1"`
	InstructorID int64 `json:"instructorId" binding:"required,gt=0" example:"1"`
	RoomID       int64 `json:"roomId" binding:"required,gt=0" example:"1"`
	TimeslotID   int64 `json:"timeslotId" binding:"required,gt=0" example:"1"`
}

// ToSchedule converts the request into a schedule model
func (r ScheduleAssignmentRequest) ToSchedule() models.Schedule {
	return models.Schedule{
		CourseID:     r.CourseID,
		SectionID:    r.SectionID,
		InstructorID: r.InstructorID,
		RoomID:       r.RoomID,
		TimeslotID:   r.TimeslotID,
	}
}

// ConflictCheckResponse is the result of a pre-flight conflict check
type ConflictCheckResponse struct {
	HasConflicts bool                      `json:"hasConflicts" example:"false"`
	Conflicts    []models.ScheduleConflict `json:"conflicts"`
}

package dto

// CreateCourseRequest is the payload for creating or updating a course
type CreateCourseRequest struct {
	Code string `json:"code" binding:"required" example:"CSE327"`
	Name string `json:"name" binding:"required" example:"Software Engineering"`
	Type string `json:"type" binding:"required,oneof=THEORY LAB CLUB" example:"THEORY"`
}

// CreateSectionRequest is the payload for creating or updating a section
type CreateSectionRequest struct {
	CourseID      int64  `json:"courseId" binding:"required,gt=0" example:"1"`
	SectionNumber string `json:"sectionNumber" binding:"required" example:"1"`
}

// CreateInstructorRequest is the payload for creating or updating an instructor
type CreateInstructorRequest struct {
	Name         string `json:"name" binding:"required" example:"Dr. Smith"`
	Email        string `json:"email" binding:"required,email" example:"smith@univ.edu"`
	Availability string `json:"availability" example:"ST mornings"`
	Type         string `json:"type" binding:"omitempty,oneof=FACULTY CLUB" example:"FACULTY"`
}

// CreateRoomRequest is the payload for creating or updating a room
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required" example:"NAC401"`
	Capacity   int    `json:"capacity" binding:"required,gt=0" example:"40"`
	Type       string `json:"type" binding:"required,oneof=THEORY LAB" example:"THEORY"`
}

// CreateTimeslotRequest is the payload for creating or updating a timeslot
type CreateTimeslotRequest struct {
	Code       string `json:"code" binding:"required" example:"ST1"`
	DayPattern string `json:"dayPattern" binding:"required,oneof=ST MW RA" example:"ST"`
	StartTime  string `json:"startTime" binding:"required" example:"08:00"`
	EndTime    string `json:"endTime" binding:"required" example:"09:30"`
}

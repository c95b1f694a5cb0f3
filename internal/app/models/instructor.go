package models

// Instructor represents a teaching instructor or a club moderator.
type Instructor struct {
	ID           int64          `json:"id" db:"id" example:"1"`
	Name         string         `json:"name" db:"name" example:"Dr. Smith"`
	Email        string         `json:"email" db:"email" example:"smith@univ.edu"` // Unique, stored lower-cased
	Availability string         `json:"availability" db:"availability" example:"ST mornings"`
	Type         InstructorType `json:"type" db:"type" example:"FACULTY"`
}

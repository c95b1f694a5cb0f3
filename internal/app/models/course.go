package models

// Course represents a course in the catalog.
type Course struct {
	ID   int64      `json:"id" db:"id" example:"1"`
	Code string     `json:"code" db:"code" example:"CSE327"` // Unique, stored upper-cased
	Name string     `json:"name" db:"name" example:"Software Engineering"`
	Type CourseType `json:"type" db:"type" example:"THEORY"`
}

package models

// CourseType defines the kind of a course
type CourseType string

// Course type constants
const (
	CourseTypeTheory CourseType = "THEORY"
	CourseTypeLab    CourseType = "LAB"
	CourseTypeClub   CourseType = "CLUB"
)

// Valid reports whether the course type is one of the known values
func (t CourseType) Valid() bool {
	switch t {
	case CourseTypeTheory, CourseTypeLab, CourseTypeClub:
		return true
	}
	return false
}

// InstructorType defines the kind of an instructor
type InstructorType string

// Instructor type constants
const (
	InstructorTypeFaculty InstructorType = "FACULTY"
	InstructorTypeClub    InstructorType = "CLUB"
)

// Valid reports whether the instructor type is one of the known values
func (t InstructorType) Valid() bool {
	switch t {
	case InstructorTypeFaculty, InstructorTypeClub:
		return true
	}
	return false
}

// RoomType defines the kind of a room
type RoomType string

// Room type constants
const (
	RoomTypeTheory RoomType = "THEORY"
	RoomTypeLab    RoomType = "LAB"
)

// Valid reports whether the room type is one of the known values
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeTheory, RoomTypeLab:
		return true
	}
	return false
}

// DayPattern defines the recurring day pattern of a timeslot
// (ST = Sunday/Tuesday, MW = Monday/Wednesday, RA = Thursday/Saturday)
type DayPattern string

// Day pattern constants
const (
	DayPatternST DayPattern = "ST"
	DayPatternMW DayPattern = "MW"
	DayPatternRA DayPattern = "RA"
)

// Valid reports whether the day pattern is one of the known values
func (p DayPattern) Valid() bool {
	switch p {
	case DayPatternST, DayPatternMW, DayPatternRA:
		return true
	}
	return false
}

package models

// Section represents a specific offering of a course.
// (course_id, section_number) is unique.
type Section struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	CourseID      int64  `json:"courseId" db:"course_id" example:"1"`
	SectionNumber string `json:"sectionNumber" db:"section_number" example:"1"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}

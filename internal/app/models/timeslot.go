package models

// Timeslot represents a named recurring time window.
// Times are "HH:MM" strings and compare lexically.
type Timeslot struct {
	ID         int64      `json:"id" db:"id" example:"1"`
	Code       string     `json:"code" db:"code" example:"ST1"` // Unique, stored upper-cased
	DayPattern DayPattern `json:"dayPattern" db:"day_pattern" example:"ST"`
	StartTime  string     `json:"startTime" db:"start_time" example:"08:00"`
	EndTime    string     `json:"endTime" db:"end_time" example:"09:30"`
}

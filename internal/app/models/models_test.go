package models

import "testing"

func TestCourseTypeValid(t *testing.T) {
	valid := []CourseType{CourseTypeTheory, CourseTypeLab, CourseTypeClub}
	for _, ct := range valid {
		if !ct.Valid() {
			t.Errorf("%s should be valid", ct)
		}
	}
	invalid := []CourseType{"", "theory", "SEMINAR"}
	for _, ct := range invalid {
		if ct.Valid() {
			t.Errorf("%q should be invalid", ct)
		}
	}
}

func TestInstructorTypeValid(t *testing.T) {
	if !InstructorTypeFaculty.Valid() || !InstructorTypeClub.Valid() {
		t.Error("known instructor types should be valid")
	}
	if InstructorType("STUDENT").Valid() {
		t.Error("STUDENT should be invalid")
	}
}

func TestRoomTypeValid(t *testing.T) {
	if !RoomTypeTheory.Valid() || !RoomTypeLab.Valid() {
		t.Error("known room types should be valid")
	}
	// CLUB is a course type only; rooms are never CLUB
	if RoomType("CLUB").Valid() {
		t.Error("CLUB should be invalid for rooms")
	}
}

func TestDayPatternValid(t *testing.T) {
	for _, p := range []DayPattern{DayPatternST, DayPatternMW, DayPatternRA} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	for _, p := range []DayPattern{"", "st", "TR"} {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

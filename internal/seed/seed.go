package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/atikurshafi/cse327/internal/app/models"
	appRepos "github.com/atikurshafi/cse327/internal/app/repositories"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

// defaultTimeslots is the standard weekly grid. Slots 1-6 cover regular
// classes (08:00-17:50); slot 7 (18:00-19:30) is reserved for club
// activities by convention.
var defaultTimeslots = []appModels.Timeslot{
	// Sunday-Tuesday
	{Code: "ST1", DayPattern: appModels.DayPatternST, StartTime: "08:00", EndTime: "09:30"},
	{Code: "ST2", DayPattern: appModels.DayPatternST, StartTime: "09:40", EndTime: "11:10"},
	{Code: "ST3", DayPattern: appModels.DayPatternST, StartTime: "11:20", EndTime: "12:50"},
	{Code: "ST4", DayPattern: appModels.DayPatternST, StartTime: "13:00", EndTime: "14:30"},
	{Code: "ST5", DayPattern: appModels.DayPatternST, StartTime: "14:40", EndTime: "16:10"},
	{Code: "ST6", DayPattern: appModels.DayPatternST, StartTime: "16:20", EndTime: "17:50"},
	{Code: "ST7", DayPattern: appModels.DayPatternST, StartTime: "18:00", EndTime: "19:30"},

	// Monday-Wednesday
	{Code: "MW1", DayPattern: appModels.DayPatternMW, StartTime: "08:00", EndTime: "09:30"},
	{Code: "MW2", DayPattern: appModels.DayPatternMW, StartTime: "09:40", EndTime: "11:10"},
	{Code: "MW3", DayPattern: appModels.DayPatternMW, StartTime: "11:20", EndTime: "12:50"},
	{Code: "MW4", DayPattern: appModels.DayPatternMW, StartTime: "13:00", EndTime: "14:30"},
	{Code: "MW5", DayPattern: appModels.DayPatternMW, StartTime: "14:40", EndTime: "16:10"},
	{Code: "MW6", DayPattern: appModels.DayPatternMW, StartTime: "16:20", EndTime: "17:50"},
	{Code: "MW7", DayPattern: appModels.DayPatternMW, StartTime: "18:00", EndTime: "19:30"},

	// Thursday-Saturday
	{Code: "RA1", DayPattern: appModels.DayPatternRA, StartTime: "08:00", EndTime: "09:30"},
	{Code: "RA2", DayPattern: appModels.DayPatternRA, StartTime: "09:40", EndTime: "11:10"},
	{Code: "RA3", DayPattern: appModels.DayPatternRA, StartTime: "11:20", EndTime: "12:50"},
	{Code: "RA4", DayPattern: appModels.DayPatternRA, StartTime: "13:00", EndTime: "14:30"},
	{Code: "RA5", DayPattern: appModels.DayPatternRA, StartTime: "14:40", EndTime: "16:10"},
	{Code: "RA6", DayPattern: appModels.DayPatternRA, StartTime: "16:20", EndTime: "17:50"},
	{Code: "RA7", DayPattern: appModels.DayPatternRA, StartTime: "18:00", EndTime: "19:30"},
}

// defaultInstructors covers both faculty members and clubs that book
// their own activity slots
var defaultInstructors = []appModels.Instructor{
	{Name: "Dr. Smith", Email: "smith@univ.edu", Type: appModels.InstructorTypeFaculty},
	{Name: "Prof. Johnson", Email: "johnson@univ.edu", Type: appModels.InstructorTypeFaculty},
	{Name: "Computer Club", Email: "cc@univ.edu", Type: appModels.InstructorTypeClub},
	{Name: "Debating Club", Email: "dc@univ.edu", Type: appModels.InstructorTypeClub},
	{Name: "Cultural Club", Email: "cultural@univ.edu", Type: appModels.InstructorTypeClub},
}

var defaultCourses = []appModels.Course{
	{Code: "CSE101", Name: "Intro to CS", Type: appModels.CourseTypeTheory},
	{Code: "CSE101L", Name: "Intro to CS Lab", Type: appModels.CourseTypeLab},
	{Code: "CLUB_MTG", Name: "General Meeting", Type: appModels.CourseTypeClub},
	{Code: "WORKSHOP", Name: "Tech Workshop", Type: appModels.CourseTypeClub},
}

// CreateDefaultData seeds the timeslot grid and sample catalog entries.
// Inserts are idempotent; rows that already exist are skipped.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	timeslotRepo := appRepos.NewTimeslotRepository(dbPool)
	instructorRepo := appRepos.NewInstructorRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (timeslots, instructors, courses)...")
	var finalErr error

	for i := range defaultTimeslots {
		timeslot := defaultTimeslots[i]
		err := timeslotRepo.Create(ctx, &timeslot)
		if err != nil && !errors.Is(err, apperrors.ErrTimeslotAlreadyExists) {
			lgr.Error().Err(err).Str("code", timeslot.Code).Msg("Error creating default timeslot")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range defaultInstructors {
		instructor := defaultInstructors[i]
		err := instructorRepo.Create(ctx, &instructor)
		if err != nil && !errors.Is(err, apperrors.ErrInstructorAlreadyExists) {
			lgr.Error().Err(err).Str("email", instructor.Email).Msg("Error creating default instructor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range defaultCourses {
		course := defaultCourses[i]
		err := courseRepo.Create(ctx, &course)
		if err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation completed")
	}
	return finalErr
}

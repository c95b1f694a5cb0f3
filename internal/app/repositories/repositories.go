package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository     *CourseRepository
	SectionRepository    *SectionRepository
	InstructorRepository *InstructorRepository
	RoomRepository       *RoomRepository
	TimeslotRepository   *TimeslotRepository
	ScheduleRepository   *ScheduleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:     NewCourseRepository(db),
		SectionRepository:    NewSectionRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		RoomRepository:       NewRoomRepository(db),
		TimeslotRepository:   NewTimeslotRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
	}
}

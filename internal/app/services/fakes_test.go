package services

import (
	"context"
	"sort"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
)

// memStore is an in-memory stand-in for the pgx repositories. It backs
// both the collision lookups and the schedule store so tests can drive
// the full service path without a database.
type memStore struct {
	courses     map[int64]models.Course
	sections    map[int64]models.Section
	instructors map[int64]models.Instructor
	rooms       map[int64]models.Room
	timeslots   map[int64]models.Timeslot

	entries map[int64]models.Schedule
	nextID  int64
}

func newMemStore() *memStore {
	return &memStore{
		courses:     make(map[int64]models.Course),
		sections:    make(map[int64]models.Section),
		instructors: make(map[int64]models.Instructor),
		rooms:       make(map[int64]models.Room),
		timeslots:   make(map[int64]models.Timeslot),
		entries:     make(map[int64]models.Schedule),
	}
}

func (m *memStore) addCourse(c models.Course) models.Course {
	m.courses[c.ID] = c
	return c
}

func (m *memStore) addSection(s models.Section) models.Section {
	m.sections[s.ID] = s
	return s
}

func (m *memStore) addInstructor(i models.Instructor) models.Instructor {
	m.instructors[i.ID] = i
	return i
}

func (m *memStore) addRoom(r models.Room) models.Room {
	m.rooms[r.ID] = r
	return r
}

func (m *memStore) addTimeslot(t models.Timeslot) models.Timeslot {
	m.timeslots[t.ID] = t
	return t
}

func (m *memStore) view(s models.Schedule) *models.ScheduleView {
	return &models.ScheduleView{
		ID:         s.ID,
		Course:     m.courses[s.CourseID],
		Section:    m.sections[s.SectionID],
		Instructor: m.instructors[s.InstructorID],
		Room:       m.rooms[s.RoomID],
		Timeslot:   m.timeslots[s.TimeslotID],
	}
}

func (m *memStore) sortedEntries() []models.Schedule {
	entries := make([]models.Schedule, 0, len(m.entries))
	for _, s := range m.entries {
		entries = append(entries, s)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// --- scheduleCollisionStore ---

func (m *memStore) FindCollisionByInstructor(_ context.Context, instructorID, timeslotID, excludeID int64) (*models.ScheduleView, error) {
	for _, s := range m.sortedEntries() {
		if s.InstructorID == instructorID && s.TimeslotID == timeslotID && (excludeID == 0 || s.ID != excludeID) {
			return m.view(s), nil
		}
	}
	return nil, nil
}

func (m *memStore) FindCollisionByRoom(_ context.Context, roomID, timeslotID, excludeID int64) (*models.ScheduleView, error) {
	for _, s := range m.sortedEntries() {
		if s.RoomID == roomID && s.TimeslotID == timeslotID && (excludeID == 0 || s.ID != excludeID) {
			return m.view(s), nil
		}
	}
	return nil, nil
}

// --- scheduleStore ---

func (m *memStore) Create(_ context.Context, schedule *models.Schedule) error {
	for _, s := range m.entries {
		if s.CourseID == schedule.CourseID && s.SectionID == schedule.SectionID &&
			s.InstructorID == schedule.InstructorID && s.RoomID == schedule.RoomID &&
			s.TimeslotID == schedule.TimeslotID {
			return apperrors.ErrScheduleAlreadyExists
		}
	}
	m.nextID++
	schedule.ID = m.nextID
	m.entries[schedule.ID] = *schedule
	return nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*models.Schedule, error) {
	s, ok := m.entries[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) Update(_ context.Context, schedule *models.Schedule) error {
	if _, ok := m.entries[schedule.ID]; !ok {
		return apperrors.ErrScheduleNotFound
	}
	m.entries[schedule.ID] = *schedule
	return nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return apperrors.ErrScheduleNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memStore) GetViewByID(_ context.Context, id int64) (*models.ScheduleView, error) {
	s, ok := m.entries[id]
	if !ok {
		return nil, nil
	}
	return m.view(s), nil
}

func (m *memStore) GetAllViews(_ context.Context) ([]*models.ScheduleView, error) {
	views := make([]*models.ScheduleView, 0, len(m.entries))
	for _, s := range m.sortedEntries() {
		views = append(views, m.view(s))
	}
	return views, nil
}

func (m *memStore) GetViewsByInstructor(_ context.Context, instructorID int64) ([]*models.ScheduleView, error) {
	views := make([]*models.ScheduleView, 0)
	for _, s := range m.sortedEntries() {
		if s.InstructorID == instructorID {
			views = append(views, m.view(s))
		}
	}
	return views, nil
}

func (m *memStore) GetViewsByRoom(_ context.Context, roomID int64) ([]*models.ScheduleView, error) {
	views := make([]*models.ScheduleView, 0)
	for _, s := range m.sortedEntries() {
		if s.RoomID == roomID {
			views = append(views, m.view(s))
		}
	}
	return views, nil
}

func (m *memStore) GetViewsByTimeslot(_ context.Context, timeslotID int64) ([]*models.ScheduleView, error) {
	views := make([]*models.ScheduleView, 0)
	for _, s := range m.sortedEntries() {
		if s.TimeslotID == timeslotID {
			views = append(views, m.view(s))
		}
	}
	return views, nil
}

// --- courseGetter / roomGetter / timeslotCodeGetter ---

func (m *memStore) CourseByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memStore) RoomByID(_ context.Context, id int64) (*models.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memStore) GetByCode(_ context.Context, code string) (*models.Timeslot, error) {
	for _, t := range m.timeslots {
		if t.Code == code {
			return &t, nil
		}
	}
	return nil, nil
}

// courseStoreAdapter exposes the memStore course map through the getter
// interfaces the services expect
type courseStoreAdapter struct{ m *memStore }

func (a courseStoreAdapter) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return a.m.CourseByID(ctx, id)
}

type roomStoreAdapter struct{ m *memStore }

func (a roomStoreAdapter) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return a.m.RoomByID(ctx, id)
}

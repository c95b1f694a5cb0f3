package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atikurshafi/cse327/internal/app/models"
	"github.com/atikurshafi/cse327/internal/pkg/apperrors"
	"github.com/atikurshafi/cse327/internal/pkg/dberrors"
)

// scheduleAssignmentConstraint is the unique constraint over the full
// (course, section, instructor, room, timeslot) tuple.
const scheduleAssignmentConstraint = "schedules_assignment_key"

// scheduleViewQuery selects a schedule entry with every referenced entity
// resolved for display.
const scheduleViewQuery = `
	SELECT s.id,
	       c.id, c.code, c.name, c.type,
	       sec.id, sec.course_id, sec.section_number,
	       i.id, i.name, i.email, i.availability, i.type,
	       r.id, r.room_number, r.capacity, r.type,
	       t.id, t.code, t.day_pattern, t.start_time, t.end_time
	FROM schedules s
	JOIN courses c ON c.id = s.course_id
	JOIN sections sec ON sec.id = s.section_id
	JOIN instructors i ON i.id = s.instructor_id
	JOIN rooms r ON r.id = s.room_id
	JOIN timeslots t ON t.id = s.timeslot_id
`

// ScheduleRepository handles database operations for schedule entries
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// Create creates a new schedule entry
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (course_id, section_id, instructor_id, room_id, timeslot_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		schedule.CourseID,
		schedule.SectionID,
		schedule.InstructorID,
		schedule.RoomID,
		schedule.TimeslotID,
	).Scan(&schedule.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, scheduleAssignmentConstraint) {
			return apperrors.ErrScheduleAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		return fmt.Errorf("error creating schedule: %w", err)
	}

	return nil
}

// GetByID retrieves a schedule entry by ID, returning nil when absent
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	query := `
		SELECT id, course_id, section_id, instructor_id, room_id, timeslot_id
		FROM schedules
		WHERE id = $1
	`

	var schedule models.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.CourseID,
		&schedule.SectionID,
		&schedule.InstructorID,
		&schedule.RoomID,
		&schedule.TimeslotID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}

	return &schedule, nil
}

// Update updates an existing schedule entry
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	query := `
		UPDATE schedules
		SET course_id = $1, section_id = $2, instructor_id = $3, room_id = $4, timeslot_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		schedule.CourseID,
		schedule.SectionID,
		schedule.InstructorID,
		schedule.RoomID,
		schedule.TimeslotID,
		schedule.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, scheduleAssignmentConstraint) {
			return apperrors.ErrScheduleAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

// Delete deletes a schedule entry by ID
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

// GetViewByID retrieves a denormalized schedule view by ID, returning nil
// when absent
func (r *ScheduleRepository) GetViewByID(ctx context.Context, id int64) (*models.ScheduleView, error) {
	row := r.db.QueryRow(ctx, scheduleViewQuery+` WHERE s.id = $1`, id)

	view, err := scanScheduleView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving schedule view: %w", err)
	}

	return view, nil
}

// GetAllViews retrieves all denormalized schedule views ordered by
// timeslot code
func (r *ScheduleRepository) GetAllViews(ctx context.Context) ([]*models.ScheduleView, error) {
	return r.queryViews(ctx, scheduleViewQuery+` ORDER BY t.code, c.code`)
}

// GetViewsByInstructor retrieves schedule views for one instructor
func (r *ScheduleRepository) GetViewsByInstructor(ctx context.Context, instructorID int64) ([]*models.ScheduleView, error) {
	return r.queryViews(ctx, scheduleViewQuery+` WHERE s.instructor_id = $1 ORDER BY t.code`, instructorID)
}

// GetViewsByRoom retrieves schedule views for one room
func (r *ScheduleRepository) GetViewsByRoom(ctx context.Context, roomID int64) ([]*models.ScheduleView, error) {
	return r.queryViews(ctx, scheduleViewQuery+` WHERE s.room_id = $1 ORDER BY t.code`, roomID)
}

// GetViewsByTimeslot retrieves schedule views for one timeslot
func (r *ScheduleRepository) GetViewsByTimeslot(ctx context.Context, timeslotID int64) ([]*models.ScheduleView, error) {
	return r.queryViews(ctx, scheduleViewQuery+` WHERE s.timeslot_id = $1 ORDER BY c.code`, timeslotID)
}

// FindCollisionByInstructor finds an existing schedule entry with the same
// instructor and timeslot, skipping excludeID when non-zero. Returns nil
// when there is no collision.
func (r *ScheduleRepository) FindCollisionByInstructor(ctx context.Context, instructorID, timeslotID, excludeID int64) (*models.ScheduleView, error) {
	query := scheduleViewQuery + `
		WHERE s.instructor_id = $1 AND s.timeslot_id = $2 AND ($3 = 0 OR s.id <> $3)
		ORDER BY s.id
		LIMIT 1`

	return r.queryCollision(ctx, query, instructorID, timeslotID, excludeID)
}

// FindCollisionByRoom finds an existing schedule entry with the same room
// and timeslot, skipping excludeID when non-zero. Returns nil when there
// is no collision.
func (r *ScheduleRepository) FindCollisionByRoom(ctx context.Context, roomID, timeslotID, excludeID int64) (*models.ScheduleView, error) {
	query := scheduleViewQuery + `
		WHERE s.room_id = $1 AND s.timeslot_id = $2 AND ($3 = 0 OR s.id <> $3)
		ORDER BY s.id
		LIMIT 1`

	return r.queryCollision(ctx, query, roomID, timeslotID, excludeID)
}

func (r *ScheduleRepository) queryCollision(ctx context.Context, query string, args ...interface{}) (*models.ScheduleView, error) {
	row := r.db.QueryRow(ctx, query, args...)

	view, err := scanScheduleView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking schedule collision: %w", err)
	}

	return view, nil
}

func (r *ScheduleRepository) queryViews(ctx context.Context, query string, args ...interface{}) ([]*models.ScheduleView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*models.ScheduleView
	for rows.Next() {
		view, err := scanScheduleView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// scanScheduleView scans one row of scheduleViewQuery
func scanScheduleView(row pgx.Row) (*models.ScheduleView, error) {
	var view models.ScheduleView
	err := row.Scan(
		&view.ID,
		&view.Course.ID, &view.Course.Code, &view.Course.Name, &view.Course.Type,
		&view.Section.ID, &view.Section.CourseID, &view.Section.SectionNumber,
		&view.Instructor.ID, &view.Instructor.Name, &view.Instructor.Email,
		&view.Instructor.Availability, &view.Instructor.Type,
		&view.Room.ID, &view.Room.RoomNumber, &view.Room.Capacity, &view.Room.Type,
		&view.Timeslot.ID, &view.Timeslot.Code, &view.Timeslot.DayPattern,
		&view.Timeslot.StartTime, &view.Timeslot.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

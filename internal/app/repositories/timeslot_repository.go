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

// TimeslotRepository handles database operations for timeslots
type TimeslotRepository struct {
	db *pgxpool.Pool
}

// NewTimeslotRepository creates a new timeslot repository
func NewTimeslotRepository(db *pgxpool.Pool) *TimeslotRepository {
	return &TimeslotRepository{
		db: db,
	}
}

// Create creates a new timeslot
func (r *TimeslotRepository) Create(ctx context.Context, timeslot *models.Timeslot) error {
	query := `
		INSERT INTO timeslots (code, day_pattern, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		timeslot.Code, timeslot.DayPattern, timeslot.StartTime, timeslot.EndTime,
	).Scan(&timeslot.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTimeslotAlreadyExists
		}
		return fmt.Errorf("error creating timeslot: %w", err)
	}

	return nil
}

// GetByID retrieves a timeslot by ID, returning nil when absent
func (r *TimeslotRepository) GetByID(ctx context.Context, id int64) (*models.Timeslot, error) {
	query := `
		SELECT id, code, day_pattern, start_time, end_time
		FROM timeslots
		WHERE id = $1
	`

	return r.queryTimeslot(ctx, query, id)
}

// GetByCode retrieves a timeslot by its code, returning nil when absent
func (r *TimeslotRepository) GetByCode(ctx context.Context, code string) (*models.Timeslot, error) {
	query := `
		SELECT id, code, day_pattern, start_time, end_time
		FROM timeslots
		WHERE code = $1
	`

	return r.queryTimeslot(ctx, query, code)
}

func (r *TimeslotRepository) queryTimeslot(ctx context.Context, query string, arg interface{}) (*models.Timeslot, error) {
	var timeslot models.Timeslot
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&timeslot.ID,
		&timeslot.Code,
		&timeslot.DayPattern,
		&timeslot.StartTime,
		&timeslot.EndTime,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving timeslot: %w", err)
	}

	return &timeslot, nil
}

// GetAll retrieves all timeslots ordered by code
func (r *TimeslotRepository) GetAll(ctx context.Context) ([]*models.Timeslot, error) {
	query := `
		SELECT id, code, day_pattern, start_time, end_time
		FROM timeslots
		ORDER BY code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timeslots []*models.Timeslot
	for rows.Next() {
		var timeslot models.Timeslot
		if err := rows.Scan(
			&timeslot.ID,
			&timeslot.Code,
			&timeslot.DayPattern,
			&timeslot.StartTime,
			&timeslot.EndTime,
		); err != nil {
			return nil, err
		}
		timeslots = append(timeslots, &timeslot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return timeslots, nil
}

// Update updates an existing timeslot
func (r *TimeslotRepository) Update(ctx context.Context, timeslot *models.Timeslot) error {
	query := `
		UPDATE timeslots
		SET code = $1, day_pattern = $2, start_time = $3, end_time = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		timeslot.Code, timeslot.DayPattern, timeslot.StartTime, timeslot.EndTime, timeslot.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTimeslotAlreadyExists
		}
		return fmt.Errorf("error updating timeslot: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimeslotNotFound
	}

	return nil
}

// Delete deletes a timeslot by ID. Timeslots referenced by schedule
// entries cannot be deleted.
func (r *TimeslotRepository) Delete(ctx context.Context, id int64) error {
	var referenced bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM schedules WHERE timeslot_id = $1)`,
		id).Scan(&referenced)

	if err != nil {
		return fmt.Errorf("error checking timeslot references: %w", err)
	}

	if referenced {
		return apperrors.ErrResourceInUse
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM timeslots WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceInUse
		}
		return fmt.Errorf("error deleting timeslot: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimeslotNotFound
	}

	return nil
}

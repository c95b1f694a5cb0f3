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

// SectionRepository handles database operations for sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// Create creates a new section
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (course_id, section_number)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, section.CourseID, section.SectionNumber).Scan(&section.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSectionAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating section: %w", err)
	}

	return nil
}

// GetByID retrieves a section by ID, returning nil when absent
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := `
		SELECT id, course_id, section_number
		FROM sections
		WHERE id = $1
	`

	var section models.Section
	err := r.db.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.CourseID,
		&section.SectionNumber,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return &section, nil
}

// GetAll retrieves all sections ordered by section number
func (r *SectionRepository) GetAll(ctx context.Context) ([]*models.Section, error) {
	query := `
		SELECT id, course_id, section_number
		FROM sections
		ORDER BY section_number
	`

	return r.querySections(ctx, query)
}

// GetByCourseID retrieves all sections of a course
func (r *SectionRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error) {
	query := `
		SELECT id, course_id, section_number
		FROM sections
		WHERE course_id = $1
		ORDER BY section_number
	`

	return r.querySections(ctx, query, courseID)
}

func (r *SectionRepository) querySections(ctx context.Context, query string, args ...interface{}) ([]*models.Section, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(
			&section.ID,
			&section.CourseID,
			&section.SectionNumber,
		); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// Update updates an existing section
func (r *SectionRepository) Update(ctx context.Context, section *models.Section) error {
	query := `
		UPDATE sections
		SET course_id = $1, section_number = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, section.CourseID, section.SectionNumber, section.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSectionAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// Delete deletes a section by ID. Sections referenced by schedule entries
// cannot be deleted.
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	var referenced bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM schedules WHERE section_id = $1)`,
		id).Scan(&referenced)

	if err != nil {
		return fmt.Errorf("error checking section references: %w", err)
	}

	if referenced {
		return apperrors.ErrResourceInUse
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceInUse
		}
		return fmt.Errorf("error deleting section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

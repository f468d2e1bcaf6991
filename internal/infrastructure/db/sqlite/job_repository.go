package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/99minutos/jobboard/internal/core/domain"
)

const jobColumns = `id, title, description, requirements, user_id`

type JobRepository struct {
	db DBTX
}

func NewJobRepository(db DBTX) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts the job only if its owner exists.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO jobs (title, description, requirements, user_id)
		SELECT ?, ?, ?, ?
		WHERE EXISTS (SELECT 1 FROM users WHERE id = ?)`,
		job.Title, job.Description, job.Requirements, job.OwnerID, job.OwnerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: user %d", domain.ErrInvalidReference, job.OwnerID)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	job.ID = id
	return nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]*domain.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE user_id = ? ORDER BY id`, ownerID)
}

func (r *JobRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	jobs := []*domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.OwnerID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) Get(ctx context.Context, id int64) (*domain.Job, error) {
	var j domain.Job
	err := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id).
		Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}

// Delete removes the job in one conditional statement. When nothing matched,
// the owner lookup tells a missing job from someone else's.
func (r *JobRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 1 {
		return nil
	}

	var actualOwner int64
	err = r.db.QueryRowContext(ctx, `SELECT user_id FROM jobs WHERE id = ?`, id).Scan(&actualOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return domain.ErrForbidden
}

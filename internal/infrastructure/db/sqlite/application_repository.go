package sqlite

import (
	"context"
	"fmt"

	"github.com/99minutos/jobboard/internal/core/domain"
)

type ApplicationRepository struct {
	db DBTX
}

func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application only if the job exists.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (job_id, applicant_name, applicant_email, applicant_resume)
		SELECT ?, ?, ?, ?
		WHERE EXISTS (SELECT 1 FROM jobs WHERE id = ?)`,
		app.JobID, app.ApplicantName, app.ApplicantEmail, app.ApplicantResume, app.JobID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: job %d", domain.ErrInvalidReference, app.JobID)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	app.ID = id
	return nil
}

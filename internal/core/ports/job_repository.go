package ports

import (
	"context"

	"github.com/99minutos/jobboard/internal/core/domain"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	// Create inserts the job and sets its ID. A missing owner yields
	// domain.ErrInvalidReference.
	Create(ctx context.Context, job *domain.Job) error
	ListAll(ctx context.Context) ([]*domain.Job, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Job, error)
	Get(ctx context.Context, id int64) (*domain.Job, error)
	ListIDs(ctx context.Context) ([]int64, error)
	// Delete removes the job only when ownerID owns it. Failures are
	// domain.ErrNotFound or domain.ErrForbidden.
	Delete(ctx context.Context, id, ownerID int64) error
}

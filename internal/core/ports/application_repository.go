package ports

import (
	"context"

	"github.com/99minutos/jobboard/internal/core/domain"
)

// ApplicationRepository stores applications. Create fails with
// domain.ErrInvalidReference when the job does not exist.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
}

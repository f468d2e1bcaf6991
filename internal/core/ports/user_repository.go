package ports

import (
	"context"

	"github.com/99minutos/jobboard/internal/core/domain"
)

// UserRepository persists accounts. Create returns domain.ErrDuplicateUsername
// when the username is taken; FindByUsername returns domain.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

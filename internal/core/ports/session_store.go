package ports

import (
	"context"
	"time"

	"github.com/99minutos/jobboard/internal/core/domain"
)

// SessionStore holds server-side session records keyed by session id.
// Get returns domain.ErrNotFound for unknown or expired ids.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Pinger is implemented by backends that report readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

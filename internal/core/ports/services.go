package ports

import (
	"context"

	"github.com/99minutos/jobboard/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Verify(ctx context.Context, username, password string) (*domain.User, error)
}

// CreateJobInput carries the post_job form after binding.
type CreateJobInput struct {
	Title        string
	Description  string
	Requirements string
	OwnerID      int64
}

type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	ListAll(ctx context.Context) ([]*domain.Job, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Job, error)
	Get(ctx context.Context, id int64) (*domain.Job, error)
	Delete(ctx context.Context, id, requesterID int64) error
	RandomJobID(ctx context.Context) (int64, error)
}

// SubmitApplicationInput carries the application form for one job.
type SubmitApplicationInput struct {
	JobID  int64
	Name   string
	Email  string
	Resume string
}

type ApplicationService interface {
	Submit(ctx context.Context, input SubmitApplicationInput) (*domain.Application, error)
}

// SessionService issues, resolves and tears down request sessions.
type SessionService interface {
	// Load resolves a cookie token into a session. Missing, tampered or
	// expired tokens produce a fresh anonymous session.
	Load(ctx context.Context, token string) *domain.Session
	// Persist saves the record and returns the signed cookie token.
	Persist(ctx context.Context, sess *domain.Session) (string, error)
	Start(ctx context.Context, sess *domain.Session, user *domain.User) (*domain.Session, error)
	End(ctx context.Context, sess *domain.Session) (*domain.Session, error)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

type stubApplicationRepo struct {
	jobs   map[int64]bool
	stored []*domain.Application
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) error {
	if !r.jobs[app.JobID] {
		return domain.ErrInvalidReference
	}
	app.ID = int64(len(r.stored) + 1)
	clone := *app
	r.stored = append(r.stored, &clone)
	return nil
}

func TestApplicationService_Submit_Success(t *testing.T) {
	repo := &stubApplicationRepo{jobs: map[int64]bool{7: true}}
	svc := NewApplicationService(repo, zerolog.Nop())

	app, err := svc.Submit(context.Background(), ports.SubmitApplicationInput{
		JobID: 7, Name: "Ann", Email: "ann@example.com", Resume: "10 years of Go",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if app.ID == 0 || app.JobID != 7 || app.ApplicantEmail != "ann@example.com" {
		t.Fatalf("unexpected application: %+v", app)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("expected 1 stored application, got %d", len(repo.stored))
	}
}

func TestApplicationService_Submit_MissingFields(t *testing.T) {
	repo := &stubApplicationRepo{jobs: map[int64]bool{7: true}}
	svc := NewApplicationService(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), ports.SubmitApplicationInput{JobID: 7, Name: "Ann", Email: "", Resume: "r"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.stored) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestApplicationService_Submit_UnknownJob(t *testing.T) {
	repo := &stubApplicationRepo{jobs: map[int64]bool{}}
	svc := NewApplicationService(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), ports.SubmitApplicationInput{JobID: 3, Name: "Ann", Email: "a@b.c", Resume: "r"})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

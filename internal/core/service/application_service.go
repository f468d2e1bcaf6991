package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

type ApplicationService struct {
	repo   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, logger: logger}
}

// Submit records an application against an existing job.
func (s *ApplicationService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
	app := &domain.Application{
		JobID:           input.JobID,
		ApplicantName:   input.Name,
		ApplicantEmail:  input.Email,
		ApplicantResume: input.Resume,
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("application_id", app.ID).Int64("job_id", app.JobID).Msg("application submitted")
	return app, nil
}

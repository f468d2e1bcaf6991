package service

import (
	"context"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
	pick   func(n int) int
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger, pick: rand.IntN}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		OwnerID:      input.OwnerID,
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("job_id", job.ID).Int64("user_id", job.OwnerID).Msg("job created")
	return job, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]*domain.Job, error) {
	return s.repo.ListAll(ctx)
}

func (s *JobService) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Job, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a job on behalf of requesterID. Only the owner may delete.
func (s *JobService) Delete(ctx context.Context, id, requesterID int64) error {
	if err := s.repo.Delete(ctx, id, requesterID); err != nil {
		s.logger.Warn().Err(err).Int64("job_id", id).Int64("user_id", requesterID).Msg("job delete rejected")
		return err
	}
	s.logger.Info().Int64("job_id", id).Int64("user_id", requesterID).Msg("job deleted")
	return nil
}

// RandomJobID picks uniformly among the ids present right now.
func (s *JobService) RandomJobID(ctx context.Context) (int64, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, domain.ErrNotFound
	}
	return ids[s.pick(len(ids))], nil
}

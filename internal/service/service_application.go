package service

import (
	"context"
	"fmt"

	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/store"
	"github.com/jobify-dev/jobify/models"
)

// applicationService implements ApplicationService. The apply-once guarantee
// lives in the storage layer; this service only translates identities into
// repository calls.
type applicationService struct {
	jobRepository store.JobRepository
	logger        *logger.Logger
}

func NewApplicationService(jobRepository store.JobRepository, logger *logger.Logger) ApplicationService {
	return &applicationService{
		jobRepository: jobRepository,
		logger:        logger,
	}
}

// Apply records the user's application to the posting.
//
// Applying twice to the same posting is not an update; the second attempt
// fails. The check-then-append is atomic down in the store, so two
// simultaneous applies by the same user still produce exactly one
// application.
//
// Returns nil on success or a wrapped storage error:
//   - store.ErrJobNotFound if the posting does not exist.
//   - store.ErrAlreadyApplied if the user already applied.
func (s *applicationService) Apply(ctx context.Context, jobID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.jobRepository.AddApplicant(ctx, jobID, userID); err != nil {
		log.Err(err).Int64("job", jobID).Int64("user", userID).Msg("job application ended with error")
		return fmt.Errorf("job application ended with error: %w", err)
	}

	log.Info().Int64("job", jobID).Int64("user", userID).Msg("application recorded")
	return nil
}

// ListApplied returns the postings the user has applied to.
func (s *applicationService) ListApplied(ctx context.Context, userID int64) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	jobs, err := s.jobRepository.FindJobsByApplicant(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user", userID).Msg("applied job listing ended with error")
		return nil, fmt.Errorf("applied job listing ended with error: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

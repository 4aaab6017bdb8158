package service

import (
	"context"
	"fmt"

	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/notify"
	"github.com/jobify-dev/jobify/internal/store"
	"github.com/jobify-dev/jobify/models"
)

// jobService implements JobService: posting creation with announcement
// fan-out, plus the browse operations.
type jobService struct {
	jobRepository  store.JobRepository
	userRepository store.UserRepository
	broadcaster    notify.Broadcaster
	logger         *logger.Logger
}

func NewJobService(jobRepository store.JobRepository, userRepository store.UserRepository, broadcaster notify.Broadcaster, logger *logger.Logger) JobService {
	return &jobService{
		jobRepository:  jobRepository,
		userRepository: userRepository,
		broadcaster:    broadcaster,
		logger:         logger,
	}
}

// CreateJob validates and persists a new posting, then announces it to every
// user whose interests overlap the posting's interest tags.
//
// The announcement step is best-effort: once the posting is persisted it is
// returned to the caller even if recipient lookup or delivery fails. A
// fan-out problem is logged, never surfaced.
//
// Returns the persisted posting (with server-assigned JobID) or:
//   - ErrInvalidDataProvided if Title or Company is empty.
//   - ErrInvalidJobCategory if Category is not one of models.JobCategories.
func (j *jobService) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	if job.Title == "" || job.Company == "" {
		log.Error().Str("title", job.Title).Str("company", job.Company).Msg("invalid job data provided")
		return models.Job{}, ErrInvalidDataProvided
	}
	if !models.IsValidJobCategory(job.Category) {
		log.Error().Str("category", job.Category).Msg("unknown job category")
		return models.Job{}, ErrInvalidJobCategory
	}

	created, err := j.jobRepository.CreateJob(ctx, job)
	if err != nil {
		log.Err(err).Str("title", job.Title).Msg("job creation ended with error")
		return models.Job{}, fmt.Errorf("job creation ended with error: %w", err)
	}

	recipients, err := j.userRepository.FindNotifiableUsers(ctx, models.RoleUser)
	if err != nil {
		log.Err(err).Int64("job", created.JobID).Msg("recipient lookup for announcement failed")
		return created, nil
	}

	j.broadcaster.NotifyJobPosted(ctx, created, recipients)

	return created, nil
}

// ListJobs returns every posting with resolved applicant lists.
func (j *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	jobs, err := j.jobRepository.FindAllJobs(ctx)
	if err != nil {
		log.Err(err).Msg("job listing ended with error")
		return nil, fmt.Errorf("job listing ended with error: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// GetJob returns a single posting with its resolved applicant list.
//
// Returns a wrapped storage error if the lookup fails (e.g. unknown id — see
// store.ErrJobNotFound).
func (j *jobService) GetJob(ctx context.Context, jobID int64) (models.Job, error) {
	log := logger.FromContext(ctx)

	job, err := j.jobRepository.FindJobByID(ctx, jobID)
	if err != nil {
		log.Err(err).Int64("id", jobID).Msg("job search by id failed")
		return models.Job{}, fmt.Errorf("job search by id failed: %w", err)
	}

	return job, nil
}

// Categories returns the closed set of accepted posting categories.
func (j *jobService) Categories(_ context.Context) []string {
	categories := make([]string, len(models.JobCategories))
	copy(categories, models.JobCategories)
	return categories
}

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/jobify-dev/jobify/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account. Returns ErrEmailAlreadyExists when
	// the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SaveUser updates the mutable profile fields (interests, linkedin) of
	// an existing account. Returns ErrNoUserWasFound when the account is gone.
	SaveUser(ctx context.Context, user models.User) (models.User, error)

	// FindNotifiableUsers returns all accounts with the given role and a
	// non-empty email, i.e. the candidate recipients for a fan-out.
	FindNotifiableUsers(ctx context.Context, role string) ([]models.User, error)
}

// JobRepository is the persistence contract for job postings and their
// applicant lists.
type JobRepository interface {
	// CreateJob persists a new posting and returns it with server-assigned
	// fields populated.
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)

	// FindJobByID returns a single posting with its applicants resolved.
	// Returns ErrJobNotFound when no posting matches.
	FindJobByID(ctx context.Context, jobID int64) (models.Job, error)

	// FindAllJobs returns every posting with applicants resolved to
	// {id, name, email}.
	FindAllJobs(ctx context.Context) ([]models.Job, error)

	// FindJobsByApplicant returns the postings the given user applied to.
	FindJobsByApplicant(ctx context.Context, userID int64) ([]models.Job, error)

	// AddApplicant appends the user to the job's applicant list. The append
	// is conditional at the database level: a concurrent or repeated apply
	// for the same (job, user) pair yields ErrAlreadyApplied, never a
	// duplicate row. Returns ErrJobNotFound when the posting does not exist.
	AddApplicant(ctx context.Context, jobID, userID int64) error
}

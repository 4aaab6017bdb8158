package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/models"
)

// jobRepository is the SQL-backed implementation of [JobRepository].
// Postings live in the "jobs" table; the applicant list is the
// "job_applications" join table ordered by application time. The
// UNIQUE(job_id, user_id) constraint on that table is what makes the
// apply-once check atomic per posting.
type jobRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewJobRepository constructs a [JobRepository] backed by the provided
// database connection and logger.
func NewJobRepository(db *DB, logger *logger.Logger) JobRepository {
	logger.Debug().Msg("creating job repository")
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

// CreateJob persists a new posting and returns it with server-assigned
// fields (JobID, CreatedAt) populated. The applicant list of a fresh
// posting is always empty.
func (r *jobRepository) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	interests, err := encodeTags(job.Interests)
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, createJob, job.Title, job.Company, job.Location, job.Description, job.Category, interests)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*jobRepository.CreateJob").Msg("error: row is nil")
		return models.Job{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created, err := scanJob(row)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.CreateJob").Msg("error: scanning error")
		return models.Job{}, err
	}

	created.Applicants = []models.Applicant{}
	return created, nil
}

// FindJobByID returns a single posting with its applicant list resolved to
// {id, name, email} in application order.
//
// Error handling:
//   - empty result set → [ErrJobNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *jobRepository) FindJobByID(ctx context.Context, jobID int64) (models.Job, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findJobByID, jobID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*jobRepository.FindJobByID").Msg("error: row is nil")
		return models.Job{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Job{}, ErrJobNotFound
		}
		log.Err(err).Str("func", "*jobRepository.FindJobByID").Msg("error: scanning error")
		return models.Job{}, err
	}

	applicants, err := r.applicantsByJob(ctx, &jobID)
	if err != nil {
		return models.Job{}, err
	}

	job.Applicants = applicants[jobID]
	if job.Applicants == nil {
		job.Applicants = []models.Applicant{}
	}

	return job, nil
}

// FindAllJobs returns every posting with applicants resolved. Applicant
// resolution is a single join query grouped in memory, not one query per
// posting.
func (r *jobRepository) FindAllJobs(ctx context.Context) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllJobs)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.FindAllJobs").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.FindAllJobs").Msg("error scanning rows")
		return nil, err
	}

	applicants, err := r.applicantsByJob(ctx, nil)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		if a := applicants[jobs[i].JobID]; a != nil {
			jobs[i].Applicants = a
		} else {
			jobs[i].Applicants = []models.Applicant{}
		}
	}

	return jobs, nil
}

// FindJobsByApplicant returns the postings the given user has applied to, in
// the store's natural order. Applicant lists are not resolved on this path;
// the caller only needs the postings themselves.
func (r *jobRepository) FindJobsByApplicant(ctx context.Context, userID int64) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("j.job_id", "j.title", "j.company", "j.location", "j.description", "j.category", "j.interests", "j.created_at").
		From("jobs j").
		Join("job_applications a ON a.job_id = j.job_id").
		Where(sq.Eq{"a.user_id": userID}).
		OrderBy("j.job_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.FindJobsByApplicant").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// AddApplicant appends the user to the posting's applicant list.
//
// The append is a conditional INSERT with ON CONFLICT DO NOTHING against the
// UNIQUE(job_id, user_id) constraint: when two applies for the same pair
// race, the database serializes them and exactly one row is written. Zero
// affected rows therefore means the pair already existed → [ErrAlreadyApplied].
func (r *jobRepository) AddApplicant(ctx context.Context, jobID, userID int64) error {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, jobExists, jobID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*jobRepository.AddApplicant").Msg("error checking job existence")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if !exists {
		return ErrJobNotFound
	}

	res, err := r.db.ExecContext(ctx, addApplicant, jobID, userID)
	if err != nil {
		// the unique constraint can still surface directly on engines
		// where ON CONFLICT does not cover it
		if postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err) {
			return ErrAlreadyApplied
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrJobNotFound
		}
		log.Err(err).Str("func", "*jobRepository.AddApplicant").Msg("error inserting application")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAlreadyApplied
	}

	return nil
}

// applicantsByJob loads resolved applicants grouped by job id. A nil jobID
// loads the applicants of every posting in one query.
func (r *jobRepository) applicantsByJob(ctx context.Context, jobID *int64) (map[int64][]models.Applicant, error) {
	log := logger.FromContext(ctx)

	var rows *sql.Rows
	var err error
	if jobID != nil {
		rows, err = r.db.QueryContext(ctx, findApplicantsForJob, *jobID)
	} else {
		rows, err = r.db.QueryContext(ctx, findApplicantsForJobs)
	}
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.applicantsByJob").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	applicants := make(map[int64][]models.Applicant)
	for rows.Next() {
		var id int64
		var a models.Applicant
		if err := rows.Scan(&id, &a.UserID, &a.Name, &a.Email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		applicants[id] = append(applicants[id], a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return applicants, nil
}

func collectJobs(rows *sql.Rows) ([]models.Job, error) {
	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return jobs, nil
}

func scanJob(row rowScanner) (models.Job, error) {
	var job models.Job
	var interests string

	if err := row.Scan(&job.JobID, &job.Title, &job.Company, &job.Location, &job.Description, &job.Category, &interests, &job.CreatedAt); err != nil {
		return models.Job{}, err
	}

	tags, err := decodeTags(interests)
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	job.Interests = tags

	return job, nil
}

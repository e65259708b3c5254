package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
)

// jobStatusRepository is the sqlite-backed implementation of
// [JobStatusRepository]. Every job invocation writes a pending record first
// and overwrites it with the outcome when the run finishes; the same job id
// written twice simply keeps the later record.
type jobStatusRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewJobStatusRepository constructs a [JobStatusRepository] backed by the
// provided sqlite connection and logger.
func NewJobStatusRepository(db *DB, logger *logger.Logger) JobStatusRepository {
	logger.Debug().Msg("creating job status repository")
	return &jobStatusRepository{
		db:     db,
		logger: logger,
	}
}

// SaveStatus upserts a job-status record keyed by job id.
func (r *jobStatusRepository) SaveStatus(ctx context.Context, job models.Job) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveJobStatus,
		job.JobID, string(job.Type), string(job.Status), string(job.Result), job.Error, job.CreatedAt, job.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*jobStatusRepository.SaveStatus").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// GetStatus retrieves the record for a single job id.
// Returns [ErrJobNotFound] when no record exists.
func (r *jobStatusRepository) GetStatus(ctx context.Context, jobID string) (models.Job, error) {
	log := logger.FromContext(ctx)

	var (
		job    models.Job
		result string
	)
	row := r.db.QueryRowContext(ctx, getJobStatus, jobID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*jobStatusRepository.GetStatus").Msg("error: row is nil")
		return models.Job{}, errors.Join(ErrExecutingQuery, err)
	}

	if err := row.Scan(&job.JobID, &job.Type, &job.Status, &result, &job.Error, &job.CreatedAt, &job.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Job{}, ErrJobNotFound
		}
		log.Err(err).Str("func", "*jobStatusRepository.GetStatus").Msg("error: scanning error")
		return models.Job{}, errors.Join(ErrScanningRow, err)
	}
	if result != "" {
		job.Result = []byte(result)
	}

	return job, nil
}

// ListRecent returns up to limit records, most recently updated first.
func (r *jobStatusRepository) ListRecent(ctx context.Context, limit int) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRecentJobs, limit)
	if err != nil {
		log.Err(err).Str("func", "*jobStatusRepository.ListRecent").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var (
			job    models.Job
			result string
		)
		if err := rows.Scan(&job.JobID, &job.Type, &job.Status, &result, &job.Error, &job.CreatedAt, &job.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*jobStatusRepository.ListRecent").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		if result != "" {
			job.Result = []byte(result)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*jobStatusRepository.ListRecent").Msg("error: rows iteration error")
		return nil, err
	}

	return jobs, nil
}

package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pagemark/pagemark/internal/adapter"
	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/models"
)

// Default per-job timeouts for the single backend call a job makes.
const (
	defaultCleanupTimeout  = 300 * time.Second
	defaultUploadTimeout   = 120 * time.Second
	defaultSaveTimeout     = 60 * time.Second
	defaultReminderTimeout = 120 * time.Second
)

// Runner executes jobs. Every Run* method follows the same shape: record a
// pending status, call exactly one backend endpoint with the per-job timeout,
// then record completed with the result or failed with the error. The error
// is returned to the caller; nothing retries.
type Runner struct {
	backend  adapter.BackendClient
	statuses store.JobStatusRepository

	cleanupTimeout  time.Duration
	uploadTimeout   time.Duration
	saveTimeout     time.Duration
	reminderTimeout time.Duration

	logger *logger.Logger
}

func NewRunner(backend adapter.BackendClient, statuses store.JobStatusRepository, cfg config.Jobs, logger *logger.Logger) *Runner {
	r := &Runner{
		backend:         backend,
		statuses:        statuses,
		cleanupTimeout:  cfg.CleanupTimeout,
		uploadTimeout:   cfg.UploadTimeout,
		saveTimeout:     cfg.SaveTimeout,
		reminderTimeout: cfg.ReminderTimeout,
		logger:          logger,
	}

	if r.cleanupTimeout <= 0 {
		r.cleanupTimeout = defaultCleanupTimeout
	}
	if r.uploadTimeout <= 0 {
		r.uploadTimeout = defaultUploadTimeout
	}
	if r.saveTimeout <= 0 {
		r.saveTimeout = defaultSaveTimeout
	}
	if r.reminderTimeout <= 0 {
		r.reminderTimeout = defaultReminderTimeout
	}

	return r
}

func (r *Runner) RunCleanup(ctx context.Context, jobID string, req models.CleanupRequest) (models.CleanupResult, error) {
	r.begin(ctx, jobID, models.JobTypeCleanup)

	callCtx, cancel := context.WithTimeout(ctx, r.cleanupTimeout)
	defer cancel()

	result, err := r.backend.CleanupImages(callCtx, req)
	if err != nil {
		r.fail(ctx, jobID, models.JobTypeCleanup, err)
		return models.CleanupResult{}, err
	}

	r.complete(ctx, jobID, models.JobTypeCleanup, result)
	return result, nil
}

func (r *Runner) RunUpload(ctx context.Context, jobID string, req models.UploadImageRequest) (models.UploadResult, error) {
	r.begin(ctx, jobID, models.JobTypeUpload)

	callCtx, cancel := context.WithTimeout(ctx, r.uploadTimeout)
	defer cancel()

	result, err := r.backend.UploadImage(callCtx, req)
	if err != nil {
		r.fail(ctx, jobID, models.JobTypeUpload, err)
		return models.UploadResult{}, err
	}

	r.complete(ctx, jobID, models.JobTypeUpload, result)
	return result, nil
}

func (r *Runner) RunSave(ctx context.Context, jobID string, req models.SavePageRequest) (models.SaveResult, error) {
	r.begin(ctx, jobID, models.JobTypeSave)

	callCtx, cancel := context.WithTimeout(ctx, r.saveTimeout)
	defer cancel()

	result, err := r.backend.SavePage(callCtx, req)
	if err != nil {
		r.fail(ctx, jobID, models.JobTypeSave, err)
		return models.SaveResult{}, err
	}

	r.complete(ctx, jobID, models.JobTypeSave, result)
	return result, nil
}

func (r *Runner) RunReminders(ctx context.Context, jobID string, req models.ReminderRequest) (models.ReminderResult, error) {
	r.begin(ctx, jobID, models.JobTypeReminders)

	callCtx, cancel := context.WithTimeout(ctx, r.reminderTimeout)
	defer cancel()

	result, err := r.backend.DispatchReminders(callCtx, req)
	if err != nil {
		r.fail(ctx, jobID, models.JobTypeReminders, err)
		return models.ReminderResult{}, err
	}

	r.complete(ctx, jobID, models.JobTypeReminders, result)
	return result, nil
}

// begin, complete, and fail overwrite the whole record each time
// (last-write-wins per job id). A bookkeeping failure is logged and the job
// proceeds; the outcome of the backend call is what the caller cares about.
func (r *Runner) begin(ctx context.Context, jobID string, jobType models.JobType) {
	r.saveStatus(ctx, models.Job{
		JobID:  jobID,
		Type:   jobType,
		Status: models.JobStatusPending,
	})
}

func (r *Runner) complete(ctx context.Context, jobID string, jobType models.JobType, result any) {
	encoded, err := json.Marshal(result)
	if err != nil {
		r.logger.Error().Err(err).Str("job_id", jobID).Msg("encoding job result")
		encoded = nil
	}

	r.saveStatus(ctx, models.Job{
		JobID:  jobID,
		Type:   jobType,
		Status: models.JobStatusCompleted,
		Result: encoded,
	})
}

func (r *Runner) fail(ctx context.Context, jobID string, jobType models.JobType, jobErr error) {
	r.saveStatus(ctx, models.Job{
		JobID:  jobID,
		Type:   jobType,
		Status: models.JobStatusFailed,
		Error:  jobErr.Error(),
	})
}

func (r *Runner) saveStatus(ctx context.Context, job models.Job) {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := r.statuses.SaveStatus(ctx, job); err != nil {
		r.logger.Error().Err(err).
			Str("job_id", job.JobID).
			Str("status", string(job.Status)).
			Msg("saving job status")
	}
}

package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(backend *mockBackendClient, statuses *memoryJobStore, cfg config.Jobs) *Runner {
	return NewRunner(backend, statuses, cfg, logger.Nop())
}

// ─────────────────────────────────────────────────────────────────────────────
// constructor defaults

func TestNewRunner_DefaultTimeouts(t *testing.T) {
	r := newTestRunner(&mockBackendClient{}, newMemoryJobStore(), config.Jobs{})

	assert.Equal(t, defaultCleanupTimeout, r.cleanupTimeout)
	assert.Equal(t, defaultUploadTimeout, r.uploadTimeout)
	assert.Equal(t, defaultSaveTimeout, r.saveTimeout)
	assert.Equal(t, defaultReminderTimeout, r.reminderTimeout)
}

func TestNewRunner_ConfiguredTimeoutsWin(t *testing.T) {
	cfg := config.Jobs{
		CleanupTimeout:  time.Second,
		UploadTimeout:   2 * time.Second,
		SaveTimeout:     3 * time.Second,
		ReminderTimeout: 4 * time.Second,
	}

	r := newTestRunner(&mockBackendClient{}, newMemoryJobStore(), cfg)

	assert.Equal(t, time.Second, r.cleanupTimeout)
	assert.Equal(t, 2*time.Second, r.uploadTimeout)
	assert.Equal(t, 3*time.Second, r.saveTimeout)
	assert.Equal(t, 4*time.Second, r.reminderTimeout)
}

// ─────────────────────────────────────────────────────────────────────────────
// success path: completed record carries the encoded result

func TestRunner_RunCleanup_Success(t *testing.T) {
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		cleanupImagesFn: func(_ context.Context, req models.CleanupRequest) (models.CleanupResult, error) {
			return models.CleanupResult{CleanupType: req.CleanupType, Scanned: 10, Deleted: 7}, nil
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{})
	jobID := NewJobID(models.JobTypeCleanup)

	result, err := r.RunCleanup(context.Background(), jobID, models.CleanupRequest{
		CleanupType: models.CleanupMarked,
		BatchSize:   50,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, result.Deleted)

	job, ok := statuses.get(jobID)
	require.True(t, ok)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, models.JobTypeCleanup, job.Type)
	assert.Empty(t, job.Error)

	var stored models.CleanupResult
	require.NoError(t, json.Unmarshal(job.Result, &stored))
	assert.Equal(t, result, stored)
}

func TestRunner_RunCleanup_RecordsPendingFirst(t *testing.T) {
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		cleanupImagesFn: func(_ context.Context, _ models.CleanupRequest) (models.CleanupResult, error) {
			return models.CleanupResult{}, nil
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{})
	jobID := NewJobID(models.JobTypeCleanup)

	_, err := r.RunCleanup(context.Background(), jobID, models.CleanupRequest{CleanupType: models.CleanupOrphaned})
	require.NoError(t, err)

	require.Len(t, statuses.saves, 2)
	assert.Equal(t, models.JobStatusPending, statuses.saves[0].Status)
	assert.Equal(t, models.JobStatusCompleted, statuses.saves[1].Status)

	// last-write-wins: one record per job id
	assert.Equal(t, 1, statuses.recordCount())
}

func TestRunner_RunUpload_Success(t *testing.T) {
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		uploadImageFn: func(_ context.Context, req models.UploadImageRequest) (models.UploadResult, error) {
			return models.UploadResult{Key: "images/42/cover.png"}, nil
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{})
	jobID := NewJobID(models.JobTypeUpload)

	result, err := r.RunUpload(context.Background(), jobID, models.UploadImageRequest{
		PageID:  42,
		OwnerID: 1,
		Data:    []byte("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "images/42/cover.png", result.Key)

	job, ok := statuses.get(jobID)
	require.True(t, ok)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, models.JobTypeUpload, job.Type)
}

func TestRunner_RunSave_Success(t *testing.T) {
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		savePageFn: func(_ context.Context, req models.SavePageRequest) (models.SaveResult, error) {
			return models.SaveResult{PageID: req.PageID}, nil
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{})
	jobID := NewJobID(models.JobTypeSave)

	result, err := r.RunSave(context.Background(), jobID, models.SavePageRequest{
		PageID:  7,
		OwnerID: 1,
		Name:    "Meeting notes",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.PageID)

	job, ok := statuses.get(jobID)
	require.True(t, ok)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
}

func TestRunner_RunReminders_Success(t *testing.T) {
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		dispatchRemindersFn: func(_ context.Context, _ models.ReminderRequest) (models.ReminderResult, error) {
			return models.ReminderResult{Dispatched: 3, Failed: 1}, nil
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{})
	jobID := NewJobID(models.JobTypeReminders)

	result, err := r.RunReminders(context.Background(), jobID, models.ReminderRequest{})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Dispatched)

	job, ok := statuses.get(jobID)
	require.True(t, ok)
	assert.Equal(t, models.JobStatusCompleted, job.Status)

	var stored models.ReminderResult
	require.NoError(t, json.Unmarshal(job.Result, &stored))
	assert.Equal(t, 1, stored.Failed)
}

// ─────────────────────────────────────────────────────────────────────────────
// failure path: failed record stores the error, the error reaches the caller

func TestRunner_RunCleanup_BackendFailure(t *testing.T) {
	backendErr := errors.New("object store unreachable")
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		cleanupImagesFn: func(_ context.Context, _ models.CleanupRequest) (models.CleanupResult, error) {
			return models.CleanupResult{}, backendErr
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{})
	jobID := NewJobID(models.JobTypeCleanup)

	_, err := r.RunCleanup(context.Background(), jobID, models.CleanupRequest{CleanupType: models.CleanupMarked})

	require.ErrorIs(t, err, backendErr)

	job, ok := statuses.get(jobID)
	require.True(t, ok)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, backendErr.Error(), job.Error)
	assert.Empty(t, job.Result)
}

func TestRunner_RunUpload_BackendFailure(t *testing.T) {
	backendErr := errors.New("image too large")
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		uploadImageFn: func(_ context.Context, _ models.UploadImageRequest) (models.UploadResult, error) {
			return models.UploadResult{}, backendErr
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{})
	jobID := NewJobID(models.JobTypeUpload)

	_, err := r.RunUpload(context.Background(), jobID, models.UploadImageRequest{PageID: 1, OwnerID: 1, Data: []byte("x")})

	require.ErrorIs(t, err, backendErr)

	job, ok := statuses.get(jobID)
	require.True(t, ok)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, "image too large", job.Error)
}

// ─────────────────────────────────────────────────────────────────────────────
// timeouts

func TestRunner_AppliesPerJobTimeout(t *testing.T) {
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		savePageFn: func(ctx context.Context, _ models.SavePageRequest) (models.SaveResult, error) {
			deadline, ok := ctx.Deadline()
			if !ok {
				return models.SaveResult{}, errors.New("no deadline set")
			}
			if until := time.Until(deadline); until > 10*time.Millisecond {
				return models.SaveResult{}, errors.New("deadline further out than configured")
			}
			return models.SaveResult{}, ctx.Err()
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{SaveTimeout: 10 * time.Millisecond})

	_, err := r.RunSave(context.Background(), NewJobID(models.JobTypeSave), models.SavePageRequest{
		PageID: 1, OwnerID: 1, Name: "n",
	})

	assert.NoError(t, err)
}

func TestRunner_TimeoutExpiryFailsTheJob(t *testing.T) {
	statuses := newMemoryJobStore()
	backend := &mockBackendClient{
		dispatchRemindersFn: func(ctx context.Context, _ models.ReminderRequest) (models.ReminderResult, error) {
			<-ctx.Done()
			return models.ReminderResult{}, ctx.Err()
		},
	}

	r := newTestRunner(backend, statuses, config.Jobs{ReminderTimeout: 5 * time.Millisecond})
	jobID := NewJobID(models.JobTypeReminders)

	_, err := r.RunReminders(context.Background(), jobID, models.ReminderRequest{})

	require.ErrorIs(t, err, context.DeadlineExceeded)

	job, ok := statuses.get(jobID)
	require.True(t, ok)
	assert.Equal(t, models.JobStatusFailed, job.Status)
}

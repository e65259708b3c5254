package jobs

import (
	"context"
	"sync"

	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/models"
)

// mockBackendClient is a hand-rolled adapter.BackendClient with per-test
// function fields.
type mockBackendClient struct {
	cleanupImagesFn     func(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error)
	uploadImageFn       func(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error)
	savePageFn          func(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error)
	dispatchRemindersFn func(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error)
}

func (m *mockBackendClient) CleanupImages(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error) {
	return m.cleanupImagesFn(ctx, req)
}

func (m *mockBackendClient) UploadImage(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error) {
	return m.uploadImageFn(ctx, req)
}

func (m *mockBackendClient) SavePage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error) {
	return m.savePageFn(ctx, req)
}

func (m *mockBackendClient) DispatchReminders(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error) {
	return m.dispatchRemindersFn(ctx, req)
}

// memoryJobStore is an in-memory store.JobStatusRepository that records every
// save for inspection, last-write-wins like the real one.
type memoryJobStore struct {
	mu    sync.Mutex
	jobs  map[string]models.Job
	saves []models.Job
}

func newMemoryJobStore() *memoryJobStore {
	return &memoryJobStore{jobs: make(map[string]models.Job)}
}

func (m *memoryJobStore) SaveStatus(_ context.Context, job models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.JobID] = job
	m.saves = append(m.saves, job)
	return nil
}

func (m *memoryJobStore) GetStatus(_ context.Context, jobID string) (models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return models.Job{}, store.ErrJobNotFound
	}
	return job, nil
}

func (m *memoryJobStore) ListRecent(_ context.Context, limit int) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Job, 0, limit)
	for _, job := range m.jobs {
		out = append(out, job)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// get returns the stored record and whether it exists.
func (m *memoryJobStore) get(jobID string) (models.Job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	return job, ok
}

// recordCount returns how many distinct job records exist.
func (m *memoryJobStore) recordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

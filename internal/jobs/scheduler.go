package jobs

import (
	"context"
	"time"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
)

// Default cron intervals and batch size.
const (
	defaultReminderInterval = 5 * time.Minute
	defaultCleanupInterval  = 6 * time.Hour
	defaultCleanupBatchSize = 50
)

// Scheduler fires the same job handlers the HTTP triggers use, on a fixed
// ticker. It implements [workers.Worker]: Run blocks until ctx is cancelled.
type Scheduler struct {
	runner *Runner

	reminderInterval time.Duration
	cleanupInterval  time.Duration
	cleanupBatchSize int

	logger *logger.Logger
}

func NewScheduler(runner *Runner, cfg config.Jobs, logger *logger.Logger) *Scheduler {
	s := &Scheduler{
		runner:           runner,
		reminderInterval: cfg.ReminderInterval,
		cleanupInterval:  cfg.CleanupInterval,
		cleanupBatchSize: cfg.CleanupBatchSize,
		logger:           logger,
	}

	if s.reminderInterval <= 0 {
		s.reminderInterval = defaultReminderInterval
	}
	if s.cleanupInterval <= 0 {
		s.cleanupInterval = defaultCleanupInterval
	}
	if s.cleanupBatchSize <= 0 {
		s.cleanupBatchSize = defaultCleanupBatchSize
	}

	return s
}

func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info().
		Dur("reminder_interval", s.reminderInterval).
		Dur("cleanup_interval", s.cleanupInterval).
		Msg("scheduler started")

	reminderTicker := time.NewTicker(s.reminderInterval)
	defer reminderTicker.Stop()

	cleanupTicker := time.NewTicker(s.cleanupInterval)
	defer cleanupTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("scheduler stopped")
			return
		case <-reminderTicker.C:
			s.runReminders(ctx)
		case <-cleanupTicker.C:
			s.runCleanup(ctx)
		}
	}
}

// runReminders builds the same payload as POST /reminders/tasks.
func (s *Scheduler) runReminders(ctx context.Context) {
	jobID := NewJobID(models.JobTypeReminders)

	if _, err := s.runner.RunReminders(ctx, jobID, models.ReminderRequest{}); err != nil {
		s.logger.Err(err).Str("job_id", jobID).Msg("scheduled reminder dispatch failed")
	}
}

// runCleanup builds the same payloads as POST /cleanup/images, one run per
// cleanup type.
func (s *Scheduler) runCleanup(ctx context.Context) {
	for _, cleanupType := range []models.CleanupType{models.CleanupMarked, models.CleanupOrphaned} {
		jobID := NewJobID(models.JobTypeCleanup)

		req := models.CleanupRequest{
			CleanupType: cleanupType,
			BatchSize:   s.cleanupBatchSize,
		}

		if _, err := s.runner.RunCleanup(ctx, jobID, req); err != nil {
			s.logger.Err(err).
				Str("job_id", jobID).
				Str("cleanup_type", string(cleanupType)).
				Msg("scheduled image cleanup failed")
		}
	}
}

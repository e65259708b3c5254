package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/models"
)

// defaultReminderWindow is the lookahead used when a dispatch request does
// not override it: tasks due within the next 30 minutes get a reminder.
const defaultReminderWindow = 30 * time.Minute

// reminderService is the concrete implementation of ReminderService.
type reminderService struct {
	taskRepository store.TaskRepository
	mailer         MailSender
	logger         *logger.Logger
}

// NewReminderService constructs a ReminderService wired to the TaskRepository
// and the mail client.
func NewReminderService(taskRepository store.TaskRepository, mailer MailSender, logger *logger.Logger) ReminderService {
	return &reminderService{
		taskRepository: taskRepository,
		mailer:         mailer,
		logger:         logger,
	}
}

// Dispatch scans for undone tasks without a sent reminder whose deadline
// falls inside the lookahead window and emails each owner once. Send
// failures are logged and counted, never retried; the task stays unmarked so
// the next run tries again.
func (r *reminderService) Dispatch(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error) {
	log := logger.FromContext(ctx)

	window := defaultReminderWindow
	if req.WindowMinutes > 0 {
		window = time.Duration(req.WindowMinutes) * time.Minute
	}

	due := time.Now().Add(window)
	tasks, err := r.taskRepository.ListDueTasks(ctx, due)
	if err != nil {
		log.Err(err).Msg("due task listing ended with error")
		return models.ReminderResult{}, fmt.Errorf("due task listing ended with error: %w", err)
	}

	var result models.ReminderResult
	for _, task := range tasks {
		if err := r.mailer.SendTaskReminder(ctx, task); err != nil {
			log.Warn().Err(err).Int64("taskID", task.TaskID).Msg("reminder send failed")
			result.Failed++
			continue
		}

		if err := r.taskRepository.MarkReminderSent(ctx, task.TaskID); err != nil {
			// the email went out; an unmarked task means one duplicate later,
			// which beats losing the reminder entirely
			log.Err(err).Int64("taskID", task.TaskID).Msg("marking reminder sent failed")
		}
		result.Dispatched++
	}

	log.Info().
		Int("dispatched", result.Dispatched).
		Int("failed", result.Failed).
		Msg("reminder dispatch finished")

	return result, nil
}

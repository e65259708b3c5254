package service

import (
	"context"
	"fmt"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/models"
)

// taskService is the concrete implementation of TaskService. Every operation
// is scoped to the owning user at the repository level.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// CreateTask persists a new task for its owner.
func (t *taskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.OwnerID == 0 || task.Title == "" || task.Deadline.IsZero() {
		log.Error().Int64("ownerID", task.OwnerID).Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Int64("ownerID", task.OwnerID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// GetTask retrieves a single task owned by the given user.
func (t *taskService) GetTask(ctx context.Context, taskID, ownerID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := t.taskRepository.GetTask(ctx, taskID, ownerID)
	if err != nil {
		log.Err(err).Int64("taskID", taskID).Msg("task lookup ended with error")
		return models.Task{}, fmt.Errorf("task lookup ended with error: %w", err)
	}

	return task, nil
}

// ListTasks returns the user's tasks ordered by deadline.
func (t *taskService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := t.taskRepository.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// UpdateTask overwrites a task's mutable fields.
func (t *taskService) UpdateTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	if task.TaskID == 0 || task.OwnerID == 0 || task.Title == "" {
		log.Error().Int64("taskID", task.TaskID).Msg("invalid task data provided")
		return ErrInvalidDataProvided
	}

	if err := t.taskRepository.UpdateTask(ctx, task); err != nil {
		log.Err(err).Int64("taskID", task.TaskID).Msg("task update ended with error")
		return fmt.Errorf("task update ended with error: %w", err)
	}

	return nil
}

// DeleteTask removes a task owned by the given user.
func (t *taskService) DeleteTask(ctx context.Context, taskID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := t.taskRepository.DeleteTask(ctx, taskID, ownerID); err != nil {
		log.Err(err).Int64("taskID", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}

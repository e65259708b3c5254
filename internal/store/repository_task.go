package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned fields.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.OwnerID, task.Title, task.Description, task.Deadline)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&task.TaskID, &task.OwnerID, &task.Title, &task.Description, &task.Deadline, &task.Done, &task.ReminderSent, &task.CreatedAt, &task.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, err
	}

	return task, nil
}

// GetTask retrieves a single task owned by the given user.
func (r *taskRepository) GetTask(ctx context.Context, taskID, ownerID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := r.db.QueryRowContext(ctx, getTask, taskID, ownerID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&task.TaskID, &task.OwnerID, &task.Title, &task.Description, &task.Deadline, &task.Done, &task.ReminderSent, &task.CreatedAt, &task.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error: scanning error")
		return models.Task{}, err
	}

	return task, nil
}

// ListTasksByOwner returns the user's tasks ordered by deadline.
func (r *taskRepository) ListTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTasksByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.TaskID, &t.OwnerID, &t.Title, &t.Description, &t.Deadline, &t.Done, &t.ReminderSent, &t.CreatedAt, &t.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: rows iteration error")
		return nil, err
	}

	return tasks, nil
}

// UpdateTask overwrites the mutable fields of a task owned by the given user.
// Returns [ErrTaskNotFound] when the task does not exist or belongs to
// someone else.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateTask, task.TaskID, task.OwnerID, task.Title, task.Description, task.Deadline, task.Done)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error getting affected rows")
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// DeleteTask removes a task owned by the given user.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTask, taskID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error getting affected rows")
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// ListDueTasks returns undone tasks without a sent reminder whose deadline is
// at or before due, joined with the owner's contact details. Tasks of banned
// owners are skipped.
func (r *taskRepository) ListDueTasks(ctx context.Context, due time.Time) ([]models.DueTask, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDueTasks, due)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListDueTasks").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tasks []models.DueTask
	for rows.Next() {
		var t models.DueTask
		if err := rows.Scan(&t.TaskID, &t.OwnerID, &t.Title, &t.Description, &t.Deadline, &t.Done, &t.ReminderSent, &t.CreatedAt, &t.UpdatedAt, &t.OwnerEmail, &t.OwnerName); err != nil {
			log.Err(err).Str("func", "*taskRepository.ListDueTasks").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListDueTasks").Msg("error: rows iteration error")
		return nil, err
	}

	return tasks, nil
}

// MarkReminderSent flags a task so later reminder runs skip it.
func (r *taskRepository) MarkReminderSent(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markReminderSent, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.MarkReminderSent").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.MarkReminderSent").Msg("error getting affected rows")
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

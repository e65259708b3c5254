package store

import (
	"context"
	"time"

	"github.com/pagemark/pagemark/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserBanned(ctx context.Context, userID int64, banned bool) error
	DeleteUser(ctx context.Context, userID int64) error
}

// PageRepository provides persistence for pages and their sharing state.
type PageRepository interface {
	CreatePage(ctx context.Context, page models.Page) (models.Page, error)
	GetPage(ctx context.Context, pageID int64) (models.Page, error)
	GetPageByShareID(ctx context.Context, shareID string) (models.Page, error)
	ListPagesByUser(ctx context.Context, userID int64) ([]models.Page, error)
	UpdatePage(ctx context.Context, update models.PageUpdate) error
	UpsertPage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error)
	DeletePage(ctx context.Context, pageID, ownerID int64) error

	SharePage(ctx context.Context, pageID, userID int64) error
	UnsharePage(ctx context.Context, pageID, userID int64) error
	GetSharedUserIDs(ctx context.Context, pageID int64) ([]int64, error)
}

// TaskRepository provides persistence for tasks and the reminder bookkeeping
// the reminder job relies on.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, taskID, ownerID int64) (models.Task, error)
	ListTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, taskID, ownerID int64) error

	ListDueTasks(ctx context.Context, due time.Time) ([]models.DueTask, error)
	MarkReminderSent(ctx context.Context, taskID int64) error
}

// ImageRepository provides persistence for uploaded image records.
// The object bytes themselves live in the object store; rows here only track
// ownership, page attachment, and the deletion mark.
type ImageRepository interface {
	CreateImage(ctx context.Context, image models.Image) error
	MarkImage(ctx context.Context, key string, ownerID int64) error
	ListMarked(ctx context.Context, limit int) ([]string, error)
	ListOrphaned(ctx context.Context, limit int) ([]string, error)
	DeleteImages(ctx context.Context, keys []string) (int, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Repositories use it to pick the log level for driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// JobStatusRepository is the job-status key-value store. Records are written
// per job invocation with last-write-wins semantics and read back only for
// post-hoc inspection.
type JobStatusRepository interface {
	SaveStatus(ctx context.Context, job models.Job) error
	GetStatus(ctx context.Context, jobID string) (models.Job, error)
	ListRecent(ctx context.Context, limit int) ([]models.Job, error)
}

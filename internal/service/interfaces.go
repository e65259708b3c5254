package service

import (
	"context"

	"github.com/pagemark/pagemark/models"
)

// AuthService handles user registration, credential verification, and JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PageService covers the page lifecycle: CRUD, sharing with other users,
// public share links, and the upsert used by the async save path.
type PageService interface {
	CreatePage(ctx context.Context, page models.Page) (models.Page, error)
	GetPage(ctx context.Context, pageID, userID int64) (models.Page, error)
	ListPages(ctx context.Context, userID int64) ([]models.Page, error)
	UpdatePage(ctx context.Context, update models.PageUpdate) error
	DeletePage(ctx context.Context, pageID, ownerID int64) error

	SharePage(ctx context.Context, pageID, ownerID, targetUserID int64) error
	UnsharePage(ctx context.Context, pageID, ownerID, targetUserID int64) error
	PublishPage(ctx context.Context, pageID, ownerID int64, downloadAllowed bool) (string, error)
	UnpublishPage(ctx context.Context, pageID, ownerID int64) error
	GetPublicPage(ctx context.Context, shareID string) (models.Page, error)

	SavePage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error)
}

// TaskService covers the task lifecycle with per-owner scoping.
type TaskService interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, taskID, ownerID int64) (models.Task, error)
	ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, taskID, ownerID int64) error
}

// ImageService stores image bytes in the object store, tracks their records,
// and runs the cleanup passes the image-cleanup job invokes.
type ImageService interface {
	UploadImage(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error)
	MarkImage(ctx context.Context, key string, ownerID int64) error
	Cleanup(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error)
}

// ReminderService scans for due tasks and dispatches reminder emails.
type ReminderService interface {
	Dispatch(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error)
}

// AdminService exposes the moderation surface. Every method checks the actor
// against the configured admin account first.
type AdminService interface {
	ListUsers(ctx context.Context, actorID int64) ([]models.User, error)
	SetUserBanned(ctx context.Context, actorID, userID int64, banned bool) error
	DeleteUser(ctx context.Context, actorID, userID int64) error
}

// MailSender is the slice of the mail client the reminder service needs.
type MailSender interface {
	SendTaskReminder(ctx context.Context, task models.DueTask) error
	Configured() bool
}

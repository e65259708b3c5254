package service

import (
	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/objstore"
	"github.com/pagemark/pagemark/internal/store"
)

type Services struct {
	AuthService     AuthService
	PageService     PageService
	TaskService     TaskService
	ImageService    ImageService
	ReminderService ReminderService
	AdminService    AdminService
}

func NewServices(storages *store.Storages, objectStore objstore.ObjectStore, mailer MailSender, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		PageService:     NewPageService(storages.PageRepository, logger),
		TaskService:     NewTaskService(storages.TaskRepository, logger),
		ImageService:    NewImageService(storages.ImageRepository, storages.PageRepository, objectStore, logger),
		ReminderService: NewReminderService(storages.TaskRepository, mailer, logger),
		AdminService:    NewAdminService(storages.UserRepository, cfg.App, logger),
	}
}

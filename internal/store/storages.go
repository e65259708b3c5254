package store

import "github.com/pagemark/pagemark/internal/logger"

// Storages aggregates every repository the backend server works with.
type Storages struct {
	UserRepository  UserRepository
	PageRepository  PageRepository
	TaskRepository  TaskRepository
	ImageRepository ImageRepository
}

// NewStorages wires all backend repositories onto a single database
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		PageRepository:  NewPageRepository(db, log),
		TaskRepository:  NewTaskRepository(db, log),
		ImageRepository: NewImageRepository(db, log),
	}
}

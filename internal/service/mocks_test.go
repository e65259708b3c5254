package service

import (
	"context"
	"time"

	"github.com/pagemark/pagemark/models"
)

// Hand-rolled repository mocks. Only the func fields a test sets are called;
// an unset field panics and points straight at the missing expectation.

type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findUserByIDFunc    func(ctx context.Context, userID int64) (models.User, error)
	listUsersFunc       func(ctx context.Context) ([]models.User, error)
	setUserBannedFunc   func(ctx context.Context, userID int64, banned bool) error
	deleteUserFunc      func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFunc(ctx, userID)
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFunc(ctx)
}

func (m *mockUserRepository) SetUserBanned(ctx context.Context, userID int64, banned bool) error {
	return m.setUserBannedFunc(ctx, userID, banned)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFunc(ctx, userID)
}

type mockPageRepository struct {
	createPageFunc       func(ctx context.Context, page models.Page) (models.Page, error)
	getPageFunc          func(ctx context.Context, pageID int64) (models.Page, error)
	getPageByShareIDFunc func(ctx context.Context, shareID string) (models.Page, error)
	listPagesByUserFunc  func(ctx context.Context, userID int64) ([]models.Page, error)
	updatePageFunc       func(ctx context.Context, update models.PageUpdate) error
	upsertPageFunc       func(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error)
	deletePageFunc       func(ctx context.Context, pageID, ownerID int64) error
	sharePageFunc        func(ctx context.Context, pageID, userID int64) error
	unsharePageFunc      func(ctx context.Context, pageID, userID int64) error
	getSharedUserIDsFunc func(ctx context.Context, pageID int64) ([]int64, error)
}

func (m *mockPageRepository) CreatePage(ctx context.Context, page models.Page) (models.Page, error) {
	return m.createPageFunc(ctx, page)
}

func (m *mockPageRepository) GetPage(ctx context.Context, pageID int64) (models.Page, error) {
	return m.getPageFunc(ctx, pageID)
}

func (m *mockPageRepository) GetPageByShareID(ctx context.Context, shareID string) (models.Page, error) {
	return m.getPageByShareIDFunc(ctx, shareID)
}

func (m *mockPageRepository) ListPagesByUser(ctx context.Context, userID int64) ([]models.Page, error) {
	return m.listPagesByUserFunc(ctx, userID)
}

func (m *mockPageRepository) UpdatePage(ctx context.Context, update models.PageUpdate) error {
	return m.updatePageFunc(ctx, update)
}

func (m *mockPageRepository) UpsertPage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error) {
	return m.upsertPageFunc(ctx, req)
}

func (m *mockPageRepository) DeletePage(ctx context.Context, pageID, ownerID int64) error {
	return m.deletePageFunc(ctx, pageID, ownerID)
}

func (m *mockPageRepository) SharePage(ctx context.Context, pageID, userID int64) error {
	return m.sharePageFunc(ctx, pageID, userID)
}

func (m *mockPageRepository) UnsharePage(ctx context.Context, pageID, userID int64) error {
	return m.unsharePageFunc(ctx, pageID, userID)
}

func (m *mockPageRepository) GetSharedUserIDs(ctx context.Context, pageID int64) ([]int64, error) {
	return m.getSharedUserIDsFunc(ctx, pageID)
}

type mockTaskRepository struct {
	createTaskFunc       func(ctx context.Context, task models.Task) (models.Task, error)
	getTaskFunc          func(ctx context.Context, taskID, ownerID int64) (models.Task, error)
	listTasksByOwnerFunc func(ctx context.Context, ownerID int64) ([]models.Task, error)
	updateTaskFunc       func(ctx context.Context, task models.Task) error
	deleteTaskFunc       func(ctx context.Context, taskID, ownerID int64) error
	listDueTasksFunc     func(ctx context.Context, due time.Time) ([]models.DueTask, error)
	markReminderSentFunc func(ctx context.Context, taskID int64) error
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return m.createTaskFunc(ctx, task)
}

func (m *mockTaskRepository) GetTask(ctx context.Context, taskID, ownerID int64) (models.Task, error) {
	return m.getTaskFunc(ctx, taskID, ownerID)
}

func (m *mockTaskRepository) ListTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	return m.listTasksByOwnerFunc(ctx, ownerID)
}

func (m *mockTaskRepository) UpdateTask(ctx context.Context, task models.Task) error {
	return m.updateTaskFunc(ctx, task)
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, taskID, ownerID int64) error {
	return m.deleteTaskFunc(ctx, taskID, ownerID)
}

func (m *mockTaskRepository) ListDueTasks(ctx context.Context, due time.Time) ([]models.DueTask, error) {
	return m.listDueTasksFunc(ctx, due)
}

func (m *mockTaskRepository) MarkReminderSent(ctx context.Context, taskID int64) error {
	return m.markReminderSentFunc(ctx, taskID)
}

type mockImageRepository struct {
	createImageFunc  func(ctx context.Context, image models.Image) error
	markImageFunc    func(ctx context.Context, key string, ownerID int64) error
	listMarkedFunc   func(ctx context.Context, limit int) ([]string, error)
	listOrphanedFunc func(ctx context.Context, limit int) ([]string, error)
	deleteImagesFunc func(ctx context.Context, keys []string) (int, error)
}

func (m *mockImageRepository) CreateImage(ctx context.Context, image models.Image) error {
	return m.createImageFunc(ctx, image)
}

func (m *mockImageRepository) MarkImage(ctx context.Context, key string, ownerID int64) error {
	return m.markImageFunc(ctx, key, ownerID)
}

func (m *mockImageRepository) ListMarked(ctx context.Context, limit int) ([]string, error) {
	return m.listMarkedFunc(ctx, limit)
}

func (m *mockImageRepository) ListOrphaned(ctx context.Context, limit int) ([]string, error) {
	return m.listOrphanedFunc(ctx, limit)
}

func (m *mockImageRepository) DeleteImages(ctx context.Context, keys []string) (int, error) {
	return m.deleteImagesFunc(ctx, keys)
}

type mockObjectStore struct {
	putFunc        func(ctx context.Context, key string, data []byte, contentType string) error
	deleteFunc     func(ctx context.Context, keys []string) ([]string, error)
	presignGetFunc func(ctx context.Context, key string) (string, error)
}

func (m *mockObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return m.putFunc(ctx, key, data, contentType)
}

func (m *mockObjectStore) Delete(ctx context.Context, keys []string) ([]string, error) {
	return m.deleteFunc(ctx, keys)
}

func (m *mockObjectStore) PresignGet(ctx context.Context, key string) (string, error) {
	return m.presignGetFunc(ctx, key)
}

type mockMailSender struct {
	sendFunc   func(ctx context.Context, task models.DueTask) error
	configured bool
}

func (m *mockMailSender) SendTaskReminder(ctx context.Context, task models.DueTask) error {
	return m.sendFunc(ctx, task)
}

func (m *mockMailSender) Configured() bool {
	return m.configured
}

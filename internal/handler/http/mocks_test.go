package http

import (
	"context"

	"github.com/pagemark/pagemark/models"
)

// Hand-rolled service mocks. Each method field can be overridden per test
// case; unset fields panic on use, which makes unexpected calls obvious.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockPageService struct {
	createPageFn    func(ctx context.Context, page models.Page) (models.Page, error)
	getPageFn       func(ctx context.Context, pageID, userID int64) (models.Page, error)
	listPagesFn     func(ctx context.Context, userID int64) ([]models.Page, error)
	updatePageFn    func(ctx context.Context, update models.PageUpdate) error
	deletePageFn    func(ctx context.Context, pageID, ownerID int64) error
	sharePageFn     func(ctx context.Context, pageID, ownerID, targetUserID int64) error
	unsharePageFn   func(ctx context.Context, pageID, ownerID, targetUserID int64) error
	publishPageFn   func(ctx context.Context, pageID, ownerID int64, downloadAllowed bool) (string, error)
	unpublishPageFn func(ctx context.Context, pageID, ownerID int64) error
	getPublicPageFn func(ctx context.Context, shareID string) (models.Page, error)
	savePageFn      func(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error)
}

func (m *mockPageService) CreatePage(ctx context.Context, page models.Page) (models.Page, error) {
	return m.createPageFn(ctx, page)
}

func (m *mockPageService) GetPage(ctx context.Context, pageID, userID int64) (models.Page, error) {
	return m.getPageFn(ctx, pageID, userID)
}

func (m *mockPageService) ListPages(ctx context.Context, userID int64) ([]models.Page, error) {
	return m.listPagesFn(ctx, userID)
}

func (m *mockPageService) UpdatePage(ctx context.Context, update models.PageUpdate) error {
	return m.updatePageFn(ctx, update)
}

func (m *mockPageService) DeletePage(ctx context.Context, pageID, ownerID int64) error {
	return m.deletePageFn(ctx, pageID, ownerID)
}

func (m *mockPageService) SharePage(ctx context.Context, pageID, ownerID, targetUserID int64) error {
	return m.sharePageFn(ctx, pageID, ownerID, targetUserID)
}

func (m *mockPageService) UnsharePage(ctx context.Context, pageID, ownerID, targetUserID int64) error {
	return m.unsharePageFn(ctx, pageID, ownerID, targetUserID)
}

func (m *mockPageService) PublishPage(ctx context.Context, pageID, ownerID int64, downloadAllowed bool) (string, error) {
	return m.publishPageFn(ctx, pageID, ownerID, downloadAllowed)
}

func (m *mockPageService) UnpublishPage(ctx context.Context, pageID, ownerID int64) error {
	return m.unpublishPageFn(ctx, pageID, ownerID)
}

func (m *mockPageService) GetPublicPage(ctx context.Context, shareID string) (models.Page, error) {
	return m.getPublicPageFn(ctx, shareID)
}

func (m *mockPageService) SavePage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error) {
	return m.savePageFn(ctx, req)
}

type mockTaskService struct {
	createTaskFn func(ctx context.Context, task models.Task) (models.Task, error)
	getTaskFn    func(ctx context.Context, taskID, ownerID int64) (models.Task, error)
	listTasksFn  func(ctx context.Context, ownerID int64) ([]models.Task, error)
	updateTaskFn func(ctx context.Context, task models.Task) error
	deleteTaskFn func(ctx context.Context, taskID, ownerID int64) error
}

func (m *mockTaskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return m.createTaskFn(ctx, task)
}

func (m *mockTaskService) GetTask(ctx context.Context, taskID, ownerID int64) (models.Task, error) {
	return m.getTaskFn(ctx, taskID, ownerID)
}

func (m *mockTaskService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	return m.listTasksFn(ctx, ownerID)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, task models.Task) error {
	return m.updateTaskFn(ctx, task)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, taskID, ownerID int64) error {
	return m.deleteTaskFn(ctx, taskID, ownerID)
}

type mockImageService struct {
	uploadImageFn func(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error)
	markImageFn   func(ctx context.Context, key string, ownerID int64) error
	cleanupFn     func(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error)
}

func (m *mockImageService) UploadImage(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error) {
	return m.uploadImageFn(ctx, req)
}

func (m *mockImageService) MarkImage(ctx context.Context, key string, ownerID int64) error {
	return m.markImageFn(ctx, key, ownerID)
}

func (m *mockImageService) Cleanup(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error) {
	return m.cleanupFn(ctx, req)
}

type mockReminderService struct {
	dispatchFn func(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error)
}

func (m *mockReminderService) Dispatch(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error) {
	return m.dispatchFn(ctx, req)
}

type mockAdminService struct {
	listUsersFn     func(ctx context.Context, actorID int64) ([]models.User, error)
	setUserBannedFn func(ctx context.Context, actorID, userID int64, banned bool) error
	deleteUserFn    func(ctx context.Context, actorID, userID int64) error
}

func (m *mockAdminService) ListUsers(ctx context.Context, actorID int64) ([]models.User, error) {
	return m.listUsersFn(ctx, actorID)
}

func (m *mockAdminService) SetUserBanned(ctx context.Context, actorID, userID int64, banned bool) error {
	return m.setUserBannedFn(ctx, actorID, userID, banned)
}

func (m *mockAdminService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	return m.deleteUserFn(ctx, actorID, userID)
}

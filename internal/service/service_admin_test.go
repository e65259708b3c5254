package service

import (
	"context"
	"testing"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRepo() *mockUserRepository {
	return &mockUserRepository{
		findUserByIDFunc: func(ctx context.Context, userID int64) (models.User, error) {
			if userID == 1 {
				return models.User{UserID: 1, Email: "admin@pagemark.app"}, nil
			}
			return models.User{UserID: userID, Email: "user@example.com"}, nil
		},
	}
}

func adminConfig() config.App {
	return config.App{AdminEmail: "admin@pagemark.app"}
}

func TestAdminListUsers(t *testing.T) {
	repo := adminRepo()
	repo.listUsersFunc = func(ctx context.Context) ([]models.User, error) {
		return []models.User{{UserID: 1}, {UserID: 2}}, nil
	}
	svc := NewAdminService(repo, adminConfig(), logger.Nop())

	users, err := svc.ListUsers(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = svc.ListUsers(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdminSetUserBanned(t *testing.T) {
	repo := adminRepo()
	var bannedID int64
	repo.setUserBannedFunc = func(ctx context.Context, userID int64, banned bool) error {
		bannedID = userID
		return nil
	}
	svc := NewAdminService(repo, adminConfig(), logger.Nop())

	require.NoError(t, svc.SetUserBanned(context.Background(), 1, 2, true))
	assert.Equal(t, int64(2), bannedID)

	// admin cannot ban themselves
	err := svc.SetUserBanned(context.Background(), 1, 1, true)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	// non-admin denied
	err = svc.SetUserBanned(context.Background(), 2, 3, true)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdminDeleteUser(t *testing.T) {
	repo := adminRepo()
	var deletedID int64
	repo.deleteUserFunc = func(ctx context.Context, userID int64) error {
		deletedID = userID
		return nil
	}
	svc := NewAdminService(repo, adminConfig(), logger.Nop())

	require.NoError(t, svc.DeleteUser(context.Background(), 1, 2))
	assert.Equal(t, int64(2), deletedID)

	err := svc.DeleteUser(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAdmin_DisabledWithoutConfig(t *testing.T) {
	svc := NewAdminService(adminRepo(), config.App{}, logger.Nop())

	_, err := svc.ListUsers(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

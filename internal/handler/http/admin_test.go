package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pagemark/pagemark/internal/service"
	"github.com/pagemark/pagemark/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAdmin(t *testing.T, admin service.AdminService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AdminService: admin})
}

func TestAdminListUsers_Success(t *testing.T) {
	admin := &mockAdminService{
		listUsersFn: func(_ context.Context, actorID int64) ([]models.User, error) {
			assert.Equal(t, int64(1), actorID)
			return []models.User{{Email: "a@example.com"}, {Email: "b@example.com"}}, nil
		},
	}

	h := newHandlerWithAdmin(t, admin)
	req := authedRequest(http.MethodGet, "/api/admin/users", "", 1, nil)
	rec := httptest.NewRecorder()

	h.adminListUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@example.com")
}

func TestAdminListUsers_NotAdmin(t *testing.T) {
	admin := &mockAdminService{
		listUsersFn: func(_ context.Context, _ int64) ([]models.User, error) {
			return nil, service.ErrNotAdmin
		},
	}

	h := newHandlerWithAdmin(t, admin)
	req := authedRequest(http.MethodGet, "/api/admin/users", "", 2, nil)
	rec := httptest.NewRecorder()

	h.adminListUsers(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminSetUserBanned_Success(t *testing.T) {
	admin := &mockAdminService{
		setUserBannedFn: func(_ context.Context, actorID, userID int64, banned bool) error {
			assert.Equal(t, int64(1), actorID)
			assert.Equal(t, int64(2), userID)
			assert.True(t, banned)
			return nil
		},
	}

	h := newHandlerWithAdmin(t, admin)
	req := authedRequest(http.MethodPost, "/api/admin/users/2/ban", `{"banned":true}`, 1,
		map[string]string{"userID": "2"})
	rec := httptest.NewRecorder()

	h.adminSetUserBanned(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminSetUserBanned_SelfBanRejected(t *testing.T) {
	admin := &mockAdminService{
		setUserBannedFn: func(_ context.Context, _, _ int64, _ bool) error {
			return service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAdmin(t, admin)
	req := authedRequest(http.MethodPost, "/api/admin/users/1/ban", `{"banned":true}`, 1,
		map[string]string{"userID": "1"})
	rec := httptest.NewRecorder()

	h.adminSetUserBanned(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminDeleteUser_Success(t *testing.T) {
	admin := &mockAdminService{
		deleteUserFn: func(_ context.Context, actorID, userID int64) error {
			assert.Equal(t, int64(1), actorID)
			assert.Equal(t, int64(2), userID)
			return nil
		},
	}

	h := newHandlerWithAdmin(t, admin)
	req := authedRequest(http.MethodDelete, "/api/admin/users/2", "", 1, map[string]string{"userID": "2"})
	rec := httptest.NewRecorder()

	h.adminDeleteUser(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminDeleteUser_InvalidID(t *testing.T) {
	h := newHandlerWithAdmin(t, &mockAdminService{})

	req := authedRequest(http.MethodDelete, "/api/admin/users/abc", "", 1, map[string]string{"userID": "abc"})
	rec := httptest.NewRecorder()

	h.adminDeleteUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pagemark/pagemark/internal/service"
	"github.com/pagemark/pagemark/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// internalRequest builds a request carrying the shared internal token header.
func internalRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set(internalTokenHeader, testInternalToken)
	return req
}

// ─────────────────────────────────────────────
// internal token guard
// ─────────────────────────────────────────────

func TestInternalEndpoints_RejectMissingToken(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/internal/images/cleanup", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInternalEndpoints_RejectWrongToken(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/internal/pages/save", strings.NewReader(`{}`))
	req.Header.Set(internalTokenHeader, "wrong-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInternalEndpoints_DisabledWithoutConfiguredToken(t *testing.T) {
	cfg := testConfig()
	cfg.App.InternalToken = ""
	h := NewHandler(&service.Services{}, cfg, newTestHandler(t, &service.Services{}).logger)
	router := h.Init()

	// even an empty header must not match an empty configured token
	req := httptest.NewRequest(http.MethodPost, "/internal/images/cleanup", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// cleanup
// ─────────────────────────────────────────────

func TestInternalCleanupImages_Success(t *testing.T) {
	images := &mockImageService{
		cleanupFn: func(_ context.Context, req models.CleanupRequest) (models.CleanupResult, error) {
			assert.Equal(t, models.CleanupMarked, req.CleanupType)
			assert.Equal(t, 50, req.BatchSize)
			return models.CleanupResult{CleanupType: req.CleanupType, Scanned: 3, Deleted: 3}, nil
		},
	}

	router := newTestHandler(t, &service.Services{ImageService: images}).Init()
	req := internalRequest(http.MethodPost, "/internal/images/cleanup", `{"cleanupType":"marked","batchSize":50}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":3`)
}

func TestInternalCleanupImages_InvalidType(t *testing.T) {
	images := &mockImageService{
		cleanupFn: func(_ context.Context, _ models.CleanupRequest) (models.CleanupResult, error) {
			return models.CleanupResult{}, service.ErrInvalidDataProvided
		},
	}

	router := newTestHandler(t, &service.Services{ImageService: images}).Init()
	req := internalRequest(http.MethodPost, "/internal/images/cleanup", `{"cleanupType":"bogus","batchSize":50}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// upload / save / reminders
// ─────────────────────────────────────────────

func TestInternalUploadImage_Success(t *testing.T) {
	images := &mockImageService{
		uploadImageFn: func(_ context.Context, req models.UploadImageRequest) (models.UploadResult, error) {
			assert.Equal(t, int64(7), req.PageID)
			assert.Equal(t, []byte("png-bytes"), req.Data)
			return models.UploadResult{Key: "images/42/2026/08/25/abc"}, nil
		},
	}

	// Data is base64 on the wire, the standard encoding/json []byte rule
	body := `{"pageId":7,"ownerId":42,"data":"cG5nLWJ5dGVz","contentType":"image/png"}`

	router := newTestHandler(t, &service.Services{ImageService: images}).Init()
	req := internalRequest(http.MethodPost, "/internal/images/upload", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "images/42/2026/08/25/abc")
}

func TestInternalSavePage_Success(t *testing.T) {
	pages := &mockPageService{
		savePageFn: func(_ context.Context, req models.SavePageRequest) (models.SaveResult, error) {
			assert.Equal(t, int64(7), req.PageID)
			assert.Equal(t, "autosaved", req.Name)
			return models.SaveResult{PageID: 7}, nil
		},
	}

	router := newTestHandler(t, &service.Services{PageService: pages}).Init()
	req := internalRequest(http.MethodPost, "/internal/pages/save",
		`{"pageId":7,"ownerId":42,"name":"autosaved","content":"# body"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pageId":7`)
}

func TestInternalDispatchReminders_Success(t *testing.T) {
	reminders := &mockReminderService{
		dispatchFn: func(_ context.Context, req models.ReminderRequest) (models.ReminderResult, error) {
			assert.Equal(t, 15, req.WindowMinutes)
			return models.ReminderResult{Dispatched: 2, Failed: 1}, nil
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	req := internalRequest(http.MethodPost, "/internal/reminders/dispatch", `{"windowMinutes":15}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dispatched":2`)
}

func TestInternalEndpoint_InvalidJSON(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := internalRequest(http.MethodPost, "/internal/reminders/dispatch", "{broken")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

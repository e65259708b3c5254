package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/service"
	"github.com/pagemark/pagemark/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInternalToken = "test-internal-token"

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			InternalToken: testInternalToken,
			Version:       "test-version",
		},
	}
}

// newTestHandler builds a Handler with the given services and a disabled
// rate limiter.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// deniedAuth is a ParseToken mock that rejects every token, which is enough
// for route-registration tests: protected routes answer 401 instead of 404.
func deniedAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := newTestHandler(t, svc)

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresConfigValues(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	assert.Equal(t, testInternalToken, h.internalToken)
	assert.Equal(t, "test-version", h.version)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/api/user/register"},
	{http.MethodPost, "/api/user/login"},
	// pages (auth middleware will return 401, not 404/405)
	{http.MethodPost, "/api/pages"},
	{http.MethodGet, "/api/pages"},
	{http.MethodGet, "/api/pages/1"},
	{http.MethodPatch, "/api/pages/1"},
	{http.MethodDelete, "/api/pages/1"},
	{http.MethodPost, "/api/pages/1/share"},
	{http.MethodDelete, "/api/pages/1/share/2"},
	{http.MethodPost, "/api/pages/1/public"},
	{http.MethodDelete, "/api/pages/1/public"},
	// tasks
	{http.MethodPost, "/api/tasks"},
	{http.MethodGet, "/api/tasks"},
	{http.MethodGet, "/api/tasks/1"},
	{http.MethodPut, "/api/tasks/1"},
	{http.MethodDelete, "/api/tasks/1"},
	// images and admin
	{http.MethodPost, "/api/images/mark"},
	{http.MethodGet, "/api/admin/users"},
	{http.MethodPost, "/api/admin/users/2/ban"},
	{http.MethodDelete, "/api/admin/users/2"},
	// internal job endpoints (internal-token middleware will return 401)
	{http.MethodPost, "/internal/images/cleanup"},
	{http.MethodPost, "/internal/images/upload"},
	{http.MethodPost, "/internal/pages/save"},
	{http.MethodPost, "/internal/reminders/dispatch"},
	// version — no auth, handler is called directly
	{http.MethodGet, "/api/version/"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	svcs := &service.Services{AuthService: deniedAuth()}
	router := newTestHandler(t, svcs).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Auth-protected routes return 401 —
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	// POST /api/version/ is not registered — only GET is.
	req := httptest.NewRequest(http.MethodPost, "/api/version/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

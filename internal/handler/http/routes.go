package http

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	limiter := newRateLimiter()
	go limiter.runCleanup(context.Background(), rateCleanupInterval)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withRateLimit(limiter))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/shared/{shareID}", h.getPublicPage)
		r.Get("/api/shared/{shareID}/download", h.downloadPublicPage)

		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/pages", h.createPage)
		r.Get("/api/pages", h.listPages)
		r.Get("/api/pages/{pageID}", h.getPage)
		r.Patch("/api/pages/{pageID}", h.updatePage)
		r.Delete("/api/pages/{pageID}", h.deletePage)

		r.Post("/api/pages/{pageID}/share", h.sharePage)
		r.Delete("/api/pages/{pageID}/share/{userID}", h.unsharePage)
		r.Post("/api/pages/{pageID}/public", h.publishPage)
		r.Delete("/api/pages/{pageID}/public", h.unpublishPage)

		r.Post("/api/tasks", h.createTask)
		r.Get("/api/tasks", h.listTasks)
		r.Get("/api/tasks/{taskID}", h.getTask)
		r.Put("/api/tasks/{taskID}", h.updateTask)
		r.Delete("/api/tasks/{taskID}", h.deleteTask)

		r.Post("/api/images/mark", h.markImage)

		r.Get("/api/admin/users", h.adminListUsers)
		r.Post("/api/admin/users/{userID}/ban", h.adminSetUserBanned)
		r.Delete("/api/admin/users/{userID}", h.adminDeleteUser)
	})

	// internal endpoints called by the job runner, never by end users
	router.Group(func(r chi.Router) {
		r.Use(h.withInternalToken)

		r.Post("/internal/images/cleanup", h.internalCleanupImages)
		r.Post("/internal/images/upload", h.internalUploadImage)
		r.Post("/internal/pages/save", h.internalSavePage)
		r.Post("/internal/reminders/dispatch", h.internalDispatchReminders)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

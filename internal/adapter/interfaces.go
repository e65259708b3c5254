// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagemark Authors

// Package adapter provides the transport layer the job runner uses to talk to
// the backend API.
//
// The primary abstraction is [BackendClient], which decouples the job handlers
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPBackendClient]) that authenticates with the shared internal token.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/pagemark/pagemark/models"
)

// BackendClient defines the calls the job runner makes against the backend's
// internal endpoints. Implementations are responsible for serialisation,
// internal-token header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type BackendClient interface {
	// CleanupImages runs one image-cleanup pass on the backend and returns
	// how much it removed.
	CleanupImages(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error)

	// UploadImage stores image bytes through the backend's async upload
	// endpoint and returns the assigned object key.
	UploadImage(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error)

	// SavePage upserts a page through the backend's async save endpoint.
	SavePage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error)

	// DispatchReminders triggers a reminder email dispatch run on the backend.
	DispatchReminders(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error)
}

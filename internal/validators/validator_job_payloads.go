package validators

import (
	"context"

	"github.com/pagemark/pagemark/models"
)

// JobPayloadValidator implements the Validator interface for the job-trigger
// payloads: CleanupRequest, UploadImageRequest, SavePageRequest, and
// ReminderRequest.
//
// It supports both value and pointer receivers for every payload type.
type JobPayloadValidator struct {
}

// NewJobPayloadValidator constructs a new JobPayloadValidator
// and returns it as the Validator interface.
func NewJobPayloadValidator() Validator {
	return &JobPayloadValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *JobPayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CleanupRequest:
		return v.validateCleanupRequest(ctx, value)
	case *models.CleanupRequest:
		return v.validateCleanupRequest(ctx, *value)

	case models.UploadImageRequest:
		return v.validateUploadImageRequest(ctx, value)
	case *models.UploadImageRequest:
		return v.validateUploadImageRequest(ctx, *value)

	case models.SavePageRequest:
		return v.validateSavePageRequest(ctx, value)
	case *models.SavePageRequest:
		return v.validateSavePageRequest(ctx, *value)

	case models.ReminderRequest:
		return v.validateReminderRequest(ctx, value)
	case *models.ReminderRequest:
		return v.validateReminderRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *JobPayloadValidator) validateCleanupRequest(_ context.Context, req models.CleanupRequest) error {
	if req.CleanupType != models.CleanupMarked && req.CleanupType != models.CleanupOrphaned {
		return ErrInvalidCleanupType
	}
	if req.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	return nil
}

func (v *JobPayloadValidator) validateUploadImageRequest(_ context.Context, req models.UploadImageRequest) error {
	if req.PageID <= 0 {
		return ErrInvalidPageID
	}
	if req.OwnerID <= 0 {
		return ErrInvalidOwnerID
	}
	if len(req.Data) == 0 {
		return ErrEmptyImageData
	}
	return nil
}

func (v *JobPayloadValidator) validateSavePageRequest(_ context.Context, req models.SavePageRequest) error {
	if req.PageID <= 0 {
		return ErrInvalidPageID
	}
	if req.OwnerID <= 0 {
		return ErrInvalidOwnerID
	}
	if req.Name == "" {
		return ErrEmptyPageName
	}
	return nil
}

func (v *JobPayloadValidator) validateReminderRequest(_ context.Context, req models.ReminderRequest) error {
	if req.WindowMinutes < 0 {
		return ErrNegativeWindow
	}
	return nil
}

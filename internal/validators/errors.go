package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidCleanupType = errors.New("cleanupType must be \"marked\" or \"orphaned\"")
	ErrInvalidBatchSize   = errors.New("batchSize must be a positive integer")
	ErrInvalidPageID      = errors.New("pageId must be a positive integer")
	ErrInvalidOwnerID     = errors.New("ownerId must be a positive integer")
	ErrEmptyImageData     = errors.New("data is required")
	ErrEmptyPageName      = errors.New("name is required")
	ErrNegativeWindow     = errors.New("windowMinutes cannot be negative")
)

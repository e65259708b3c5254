package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and the
// per-binary validation helpers when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid backend server settings
	// (for example, missing HTTP address or database DSN).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidJobsConfigs indicates invalid job-runner settings
	// (for example, missing trigger address or backend base URL).
	ErrInvalidJobsConfigs = errors.New("invalid jobs configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty job-store path for the job runner).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

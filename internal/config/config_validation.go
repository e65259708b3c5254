// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagemark Authors

package config

// validate checks invariants that must hold regardless of which binary loads
// the configuration. Binary-specific requirements live in
// [StructuredConfig.ValidateServer] and [StructuredConfig.ValidateJobs].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateServer checks the settings the backend API server cannot start
// without: an HTTP listen address, a database DSN, and token parameters.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateJobs checks the settings the job runner cannot start without:
// a trigger listen address, the backend base URL, and a job-store path.
func (cfg *StructuredConfig) ValidateJobs() error {
	if cfg.Jobs.TriggerAddress == "" || cfg.Jobs.BackendBaseURL == "" {
		return ErrInvalidJobsConfigs
	}

	if cfg.Storage.Jobs.Path == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagemark Authors

// Package validators provides input validation for the job-trigger payloads.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//
// Usage patterns:
//  1. Implement Validator to encode domain-specific validation logic.
//  2. Inject Validator implementations into handlers.
//  3. Call Validate with context and the decoded payload before acting on it.
//
// This package decouples validation logic from transport layers, enabling
// reusable and testable validation strategies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

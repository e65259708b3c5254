// Package config loads and merges the pagemark application configuration
// from environment variables, command-line flags, and an optional JSON file.
//
// All three sources populate the same [StructuredConfig] shape and are merged
// with the first non-zero value winning, so environment variables override
// flags, which override the JSON file.
package config

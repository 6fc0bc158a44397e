package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidProjectsConfigs indicates a missing project configuration
	// file path.
	ErrInvalidProjectsConfigs = errors.New("invalid projects configuration")
	// ErrInvalidServerConfigs indicates negative transport timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidClientConfigs indicates a missing project name for the
	// client.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or non-positive pool limits).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, empty address or negative rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid dispatcher settings
	// (for example, zero pool size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidClientConfig indicates unusable API client settings.
	ErrInvalidClientConfig = errors.New("invalid client configuration")
)

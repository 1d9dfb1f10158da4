package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. Any of them is fatal at startup.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1-65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token signing secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero probe interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

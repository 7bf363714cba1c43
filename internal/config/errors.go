package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnknownDBDriver indicates a storage driver other than "pgx" or
	// "sqlite3" was requested.
	ErrUnknownDBDriver = errors.New("unknown database driver")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN for the Postgres backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost outside the algorithm's supported range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

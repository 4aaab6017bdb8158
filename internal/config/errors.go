package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates missing token parameters
	// (sign key, issuer or duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidNotifierConfigs indicates an unknown notification transport
	// or a transport selected without its required settings.
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)

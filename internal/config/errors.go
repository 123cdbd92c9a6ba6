package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, a missing collector URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the client (for example, no recipient public key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid collector settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

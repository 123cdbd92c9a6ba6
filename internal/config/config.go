// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// log-system application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the recipient public key and the
	// client version string.
	App App `envPrefix:"APP_"`

	// Adapter holds outbound transport settings for the submitting client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address for the development collector.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PublicKey is the PEM-encoded RSA public key of the log recipient,
	// supplied inline. Takes precedence over PublicKeyPath.
	// Env: APP_PUBLIC_KEY
	PublicKey string `env:"PUBLIC_KEY"`

	// PublicKeyPath is the path to a PEM file holding the recipient public
	// key. Used when PublicKey is empty.
	// Env: APP_PUBLIC_KEY_PATH
	PublicKeyPath string `env:"PUBLIC_KEY_PATH"`

	// Version is the client version string (e.g. "1.2.3"). It is surfaced in
	// the User-Agent header of submissions; it is deliberately NOT part of
	// the packet framing, which carries no version marker.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound HTTP transport.
type Adapter struct {
	// CollectorURL is the base URL of the collection endpoint; packets are
	// POSTed to <CollectorURL>/api/logs.
	// Env: ADAPTER_COLLECTOR_URL
	CollectorURL string `env:"COLLECTOR_URL"`

	// RequestTimeout bounds a single submission request (e.g. "15s"). A
	// timeout surfaces as an ordinary transport failure; there is no retry.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the development collector.
type Server struct {
	// HTTPAddress is the TCP address the collector listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

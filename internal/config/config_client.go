package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// PublicKeyPEM is the PEM-encoded recipient public key, resolved from
	// either the inline config value or the configured key file.
	PublicKeyPEM string
	// Version is the client version string surfaced in transport metadata.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// CollectorURL is the base URL of the collection endpoint.
	CollectorURL string
	// RequestTimeout is the timeout for a single outbound submission.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport settings.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], resolves the recipient
// public key (inline value wins over file path), and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	publicKeyPEM, err := resolvePublicKey(cfg.App)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			PublicKeyPEM: publicKeyPEM,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			CollectorURL:   cfg.Adapter.CollectorURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}

// resolvePublicKey returns the PEM material from the inline config value or,
// when that is empty, from the configured key file.
func resolvePublicKey(app App) (string, error) {
	if app.PublicKey != "" {
		return app.PublicKey, nil
	}
	if app.PublicKeyPath == "" {
		return "", nil
	}

	pemBytes, err := os.ReadFile(app.PublicKeyPath)
	if err != nil {
		return "", fmt.Errorf("read public key file: %w", err)
	}
	return string(pemBytes), nil
}

package config

import "fmt"

// CollectorConfig is the configuration view used by the development
// collector binary.
type CollectorConfig struct {
	// Server contains the listen address.
	Server Server
}

// GetCollectorConfig builds and validates the collector-specific config view
// from the merged structured configuration.
func GetCollectorConfig() (*CollectorConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	collectorCfg := &CollectorConfig{
		Server: Server{HTTPAddress: cfg.Server.HTTPAddress},
	}

	return collectorCfg, collectorCfg.validate()
}

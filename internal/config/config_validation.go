// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself is permissive: what counts as required depends
// on which binary consumes it, so the per-view validations below carry the
// real rules.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.CollectorURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PublicKeyPEM == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *CollectorConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

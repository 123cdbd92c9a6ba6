package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a collector listen address in format [host]:[port]
//	-collector-url base URL of the collection endpoint
//	-public-key inline PEM-encoded recipient public key
//	-public-key-path path to a PEM file with the recipient public key
//	-request-timeout submission timeout (e.g., "15s", "1m")
//	-version client version string
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var collectorURL string
	var publicKey string
	var publicKeyPath string
	var requestTimeout time.Duration
	var version string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Collector listen address host:port")
	flag.StringVar(&collectorURL, "collector-url", "", "Collection endpoint base URL")
	flag.StringVar(&publicKey, "public-key", "", "Recipient public key (PEM)")
	flag.StringVar(&publicKeyPath, "public-key-path", "", "Path to recipient public key PEM file")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Submission timeout (e.g., 15s, 1m)")
	flag.StringVar(&version, "version", "", "Client version string")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PublicKey:     publicKey,
			PublicKeyPath: publicKeyPath,
			Version:       version,
		},
		Adapter: Adapter{
			CollectorURL:   collectorURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}

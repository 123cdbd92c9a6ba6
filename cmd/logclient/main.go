package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kiss-kedaya/log-system/internal/adapter"
	"github.com/kiss-kedaya/log-system/internal/config"
	"github.com/kiss-kedaya/log-system/internal/crypto"
	"github.com/kiss-kedaya/log-system/internal/logger"
	"github.com/kiss-kedaya/log-system/internal/service"
	"github.com/kiss-kedaya/log-system/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("log-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	collector, err := adapter.NewHTTPLogCollector(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create collector adapter")
	}

	logService := service.NewLogService(crypto.NewPacketService(), collector)
	if err = logService.SetPublicKey(cfg.App.PublicKeyPEM); err != nil {
		log.Fatal().Err(err).Msg("set recipient public key")
	}

	payload, err := readPayload()
	if err != nil {
		log.Fatal().Err(err).Msg("read payload")
	}

	ctx := context.Background()
	if err = logService.Submit(ctx, payload); err != nil {
		log.Error().Err(err).Msg("submit log failed")
		os.Exit(1)
	}

	log.Info().Msg("log submitted")
}

// readPayload decodes a JSON object from stdin when one is piped in;
// otherwise it falls back to a sample event so the pipeline can be exercised
// without preparing input.
func readPayload() (any, error) {
	stat, err := os.Stdin.Stat()
	if err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		var payload map[string]any
		if err := json.NewDecoder(os.Stdin).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode stdin payload: %w", err)
		}
		return payload, nil
	}

	return models.LogEvent{
		Event:     "user_login",
		UserID:    12345,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

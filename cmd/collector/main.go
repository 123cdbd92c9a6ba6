package main

import (
	"github.com/kiss-kedaya/log-system/internal/config"
	handler "github.com/kiss-kedaya/log-system/internal/handler/http"
	"github.com/kiss-kedaya/log-system/internal/logger"
	"github.com/kiss-kedaya/log-system/internal/server"
)

func main() {
	log := logger.NewLogger("collector")

	cfg, err := config.GetCollectorConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	h := handler.NewHandler(log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	srv.RunServer()
}

// SPDX-License-Identifier: Apache-2.0

// Package server wires and runs the collector's HTTP transport, including
// startup, signal handling, and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/kiss-kedaya/log-system/internal/config"
	"github.com/kiss-kedaya/log-system/internal/logger"
)

// Server is the minimal lifecycle contract for the collector process.
type Server interface {
	// RunServer blocks until the process receives a termination signal and
	// the HTTP server has shut down.
	RunServer()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer constructs a collector [Server] listening on the configured
// address and serving handler.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, config.ErrInvalidServerConfigs
	}

	return &server{
		httpServer: &http.Server{Addr: cfg.HTTPAddress, Handler: handler},
		logger:     logger,
	}, nil
}

// RunServer implements [Server].
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("http server shutdown")
		return
	}
	s.logger.Info().Msg("server stopped gracefully")
}

// SPDX-License-Identifier: Apache-2.0

// Package http implements the development collector's HTTP surface: a single
// intake route that accepts encrypted packets and acknowledges them.
//
// The collector never decrypts. It exists so the client can be exercised
// end-to-end without a real deployment; received packets are acknowledged
// with 202 and only their sizes are logged.
package http

import (
	"github.com/kiss-kedaya/log-system/internal/logger"
)

// Handler bundles the collector's HTTP handlers and their dependencies.
type Handler struct {
	logger *logger.Logger
}

// NewHandler constructs the collector handler set.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		logger: logger,
	}
}

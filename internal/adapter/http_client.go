// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/kiss-kedaya/log-system/internal/config"
	"github.com/kiss-kedaya/log-system/internal/logger"
)

// submitPath is the fixed collection path under the configured base URL.
const submitPath = "/api/logs"

// defaultRequestTimeout bounds a submission when no timeout is configured.
// A timeout surfaces as an ordinary transport failure, same as any other
// connection error.
const defaultRequestTimeout = 15 * time.Second

type httpLogCollector struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPLogCollector constructs a [LogCollector] that submits packets over
// HTTP using the configured base URL, request timeout, and client version
// (surfaced in the User-Agent header). Returns [ErrMissingCollectorURL] when
// no base URL is configured.
func NewHTTPLogCollector(cfg config.ClientAdapter, app config.ClientApp, log *logger.Logger) (LogCollector, error) {
	baseURL := strings.TrimRight(cfg.CollectorURL, "/")
	if baseURL == "" {
		return nil, ErrMissingCollectorURL
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent(app.Version))

	return &httpLogCollector{client: cli, logger: log}, nil
}

// SubmitPacket implements [LogCollector]. Exactly one POST per call; no
// retries on any failure.
func (h *httpLogCollector) SubmitPacket(ctx context.Context, packet []byte) error {
	requestID := uuid.NewString()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("X-Request-ID", requestID).
		SetBody(packet).
		Post(submitPath)
	if err != nil {
		return fmt.Errorf("submit packet request: %w", err)
	}

	if !isSuccessStatus(resp.StatusCode()) {
		return &StatusError{Code: resp.StatusCode()}
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Int("packet_size", len(packet)).
		Msg("packet accepted by collector")

	return nil
}

// isSuccessStatus reports whether code belongs to the accepted success set.
// Note this is narrower than the whole 2xx class: 203 or 206 from a
// misbehaving proxy is still a failure.
func isSuccessStatus(code int) bool {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return true
	}
	return false
}

func userAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return "log-system-client/" + version
}

// SPDX-License-Identifier: Apache-2.0

package http

import (
	"io"
	"net/http"

	"github.com/kiss-kedaya/log-system/internal/logger"
)

// maxPacketSize caps a single intake body. Packets are one wrapped key plus
// a padded payload, so anything beyond this is misuse, not a log.
const maxPacketSize = 16 << 20 // 16 MiB

// intake accepts an encrypted packet and acknowledges it with 202. The
// packet is opaque to the collector: without the recipient private key there
// is nothing to validate beyond the transport shape, and decryption is
// deliberately not this binary's job.
func (h *Handler) intake(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if ct := r.Header.Get("Content-Type"); ct != "application/octet-stream" {
		log.Warn().Str("content_type", ct).Msg("rejected packet with wrong content type")
		http.Error(w, "expected application/octet-stream", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPacketSize+1))
	if err != nil {
		log.Error().Err(err).Msg("failed to read packet body")
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, "empty packet", http.StatusBadRequest)
		return
	}
	if len(body) > maxPacketSize {
		http.Error(w, "packet too large", http.StatusRequestEntityTooLarge)
		return
	}

	log.Info().Int("packet_size", len(body)).Msg("packet received")
	w.WriteHeader(http.StatusAccepted)
}

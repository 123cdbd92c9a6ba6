// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for delivering encrypted
// packets to the collection endpoint.
//
// The primary abstraction is [LogCollector], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPLogCollector]) that POSTs raw packet bytes.
//
// Non-success statuses surface as [*StatusError] so callers can inspect the
// numeric code with errors.As; transport-level failures are wrapped with
// their underlying cause. The adapter never retries: retry and backoff
// policy belongs to the caller.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/log_collector_mock.go -package=mock

// LogCollector delivers assembled packets to the collection endpoint.
type LogCollector interface {
	// SubmitPacket POSTs packet as an octet-stream body to the /api/logs
	// path under the configured base URL. Statuses 200, 201, 202, and 204
	// count as success; anything else returns a [*StatusError]. Exactly one
	// request is issued per call.
	SubmitPacket(ctx context.Context, packet []byte) error
}

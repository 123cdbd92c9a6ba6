// SPDX-License-Identifier: Apache-2.0

// Package service orchestrates the encrypt-then-submit pipeline: it owns the
// recipient public-key handle and drives the crypto core and the transport
// adapter in a strictly forward sequence.
//
// Errors are returned, never swallowed; logging of failures is the binary's
// job. Retry and backoff policy belongs to the caller as well — a failed
// submission here is terminal for that packet.
package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/log_service_mock.go -package=mock

// LogService is the client-facing entry point of the pipeline.
//
// The only state shared across calls is the public-key handle set by
// SetPublicKey; everything else (key material, IV, buffers) is local to a
// single call, so concurrent submissions are safe as long as the underlying
// random source and HTTP transport are.
type LogService interface {
	// SetPublicKey parses the PEM-encoded recipient key and stores the
	// handle for all subsequent encryptions. Returns an error wrapping
	// [crypto.ErrKeyFormat] for unparsable material.
	SetPublicKey(publicKeyPEM string) error

	// Encrypt runs serialize-encrypt-wrap-assemble and returns the wire-form
	// packet without sending it. Fails with [crypto.ErrNoPublicKey] before
	// any cryptographic work when no key has been set.
	Encrypt(payload any) ([]byte, error)

	// Submit is Encrypt followed by a single delivery to the collection
	// endpoint. No network call happens if encryption fails.
	Submit(ctx context.Context, payload any) error
}

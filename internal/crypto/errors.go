package crypto

import "errors"

var (
	// ErrNoPublicKey indicates that encryption was attempted before a
	// recipient public key was configured. No cryptographic work or network
	// call happens after this error.
	ErrNoPublicKey = errors.New("no recipient public key configured")

	// ErrKeyFormat indicates that the supplied key material could not be
	// parsed as a PEM-encoded RSA public key.
	ErrKeyFormat = errors.New("malformed public key")

	// ErrNotSerializable indicates a payload whose leaf types JSON cannot
	// represent (channels, functions, cyclic values).
	ErrNotSerializable = errors.New("payload is not serializable")

	// ErrRandomSource indicates that the secure random source failed to
	// supply bytes. This is fatal for the message; there is no fallback.
	ErrRandomSource = errors.New("secure random source unavailable")
)

// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the client side of the hybrid-encryption scheme:
// a fresh AES-256 key and IV protect the payload with CBC and PKCS#7-style
// padding, and the key itself is wrapped under the recipient's RSA public key
// with OAEP/SHA-256. Only the holder of the matching private key can recover
// the plaintext.
//
// The package knows nothing about the network or configuration. Its single
// output is a [models.Packet]; delivery is the adapter layer's job.
package crypto

import (
	"crypto/rsa"

	"github.com/kiss-kedaya/log-system/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/packet_service_mock.go -package=mock

// PacketService turns an arbitrary payload into a single encrypted packet.
//
// Pipeline, strictly forward:
//
//	bytes  = Serialize(payload)               (step 1)
//	packet = Encrypt(bytes, publicKey)        (steps 2-4: key/IV, CBC, wrap)
//
// Seal is the composition of both steps.
type PacketService interface {
	// Serialize canonicalizes payload into UTF-8 bytes. Strings pass through
	// unchanged; any other value is JSON-encoded. Returns an error wrapping
	// [ErrNotSerializable] for values JSON cannot represent.
	Serialize(payload any) ([]byte, error)

	// Encrypt protects plaintext with a fresh 32-byte AES key and 16-byte IV
	// in CBC mode, wraps the key under publicKey with RSA-OAEP/SHA-256, and
	// returns the assembled packet. The key material is zeroed before the
	// call returns. Fails with [ErrNoPublicKey] when publicKey is nil and
	// with an error wrapping [ErrRandomSource] when the random source cannot
	// supply bytes.
	Encrypt(plaintext []byte, publicKey *rsa.PublicKey) (models.Packet, error)

	// Seal is Serialize followed by Encrypt.
	Seal(payload any, publicKey *rsa.PublicKey) (models.Packet, error)
}

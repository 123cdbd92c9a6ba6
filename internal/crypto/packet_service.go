// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kiss-kedaya/log-system/models"
)

// packetService is the private implementation of [PacketService].
type packetService struct {
	// random feeds the symmetric key, the IV, and the OAEP seed. Injected so
	// tests can substitute a deterministic source without touching the
	// encryption logic.
	random io.Reader
}

// NewPacketService constructs a [PacketService] backed by the OS CSPRNG.
func NewPacketService() PacketService {
	return &packetService{random: rand.Reader}
}

// NewPacketServiceWithRandom constructs a [PacketService] that draws all
// randomness from random instead of the OS CSPRNG. Intended for tests that
// need reproducible packets; production callers use [NewPacketService].
func NewPacketServiceWithRandom(random io.Reader) PacketService {
	return &packetService{random: random}
}

// Serialize implements [PacketService]. Strings pass through as raw UTF-8
// bytes, matching the wire behavior for pre-serialized payloads; everything
// else goes through encoding/json, which sorts map keys and therefore yields
// a canonical encoding for string-keyed mappings.
func (p *packetService) Serialize(payload any) ([]byte, error) {
	if s, ok := payload.(string); ok {
		return []byte(s), nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}
	return data, nil
}

// Encrypt implements [PacketService].
func (p *packetService) Encrypt(plaintext []byte, publicKey *rsa.PublicKey) (models.Packet, error) {
	if publicKey == nil {
		return models.Packet{}, ErrNoPublicKey
	}

	// 1. Fresh symmetric key material, never reused across messages.
	key := make([]byte, models.SymmetricKeyLength)
	if _, err := io.ReadFull(p.random, key); err != nil {
		return models.Packet{}, fmt.Errorf("%w: generate key: %v", ErrRandomSource, err)
	}
	defer zero(key)

	iv := make([]byte, models.IVLength)
	if _, err := io.ReadFull(p.random, iv); err != nil {
		return models.Packet{}, fmt.Errorf("%w: generate iv: %v", ErrRandomSource, err)
	}

	// 2. Pad to a whole number of blocks and encrypt with AES-256-CBC.
	block, err := aes.NewCipher(key)
	if err != nil {
		return models.Packet{}, fmt.Errorf("create cipher: %w", err)
	}
	padded := pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	zero(padded)

	// 3. Wrap the symmetric key under the recipient's public key
	//    (before the deferred zero of key runs).
	wrapped, err := p.wrapKey(key, publicKey)
	if err != nil {
		return models.Packet{}, err
	}

	// 4. Assemble: WrappedKey ‖ IV ‖ CipherBlock, in that order.
	return models.Packet{WrappedKey: wrapped, IV: iv, CipherBlock: ciphertext}, nil
}

// Seal implements [PacketService].
func (p *packetService) Seal(payload any, publicKey *rsa.PublicKey) (models.Packet, error) {
	plaintext, err := p.Serialize(payload)
	if err != nil {
		return models.Packet{}, err
	}
	return p.Encrypt(plaintext, publicKey)
}

// wrapKey encrypts the symmetric key with RSA-OAEP, SHA-256 for both the
// primary hash and MGF1, no label. The output length equals the modulus size
// of publicKey.
func (p *packetService) wrapKey(key []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	wrapped, err := rsa.EncryptOAEP(sha256.New(), p.random, publicKey, key, nil)
	if err != nil {
		return nil, fmt.Errorf("wrap symmetric key: %w", err)
	}
	return wrapped, nil
}

// pad appends PKCS#7-style padding: padLen bytes, each of value padLen, where
// padLen = 16 - (len mod 16). Block-aligned input gains a full extra block,
// so padLen is always in [1,16] and decryption can strip it unambiguously.
func pad(data []byte) []byte {
	padLen := models.CipherBlockSize - len(data)%models.CipherBlockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// zero overwrites b in place. Key material is transient and must not outlive
// the call that produced it.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

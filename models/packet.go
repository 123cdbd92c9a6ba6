// SPDX-License-Identifier: Apache-2.0

package models

import "errors"

// Sizes fixed by the encryption scheme. The wrapped-key length is NOT listed
// here because it depends on the recipient key's modulus size and must be
// agreed out-of-band (see [SplitPacket]).
const (
	// SymmetricKeyLength is the AES-256 key size in bytes.
	SymmetricKeyLength = 32
	// IVLength is the CBC initialization-vector size in bytes.
	IVLength = 16
	// CipherBlockSize is the AES block size; the ciphertext length is always
	// a multiple of this value.
	CipherBlockSize = 16
)

// Errors returned by [SplitPacket] for blobs that cannot possibly have been
// produced by the assembly rules.
var (
	ErrPacketTooShort  = errors.New("packet too short")
	ErrPacketMisaligned = errors.New("ciphertext length is not a multiple of the block size")
)

// Packet is the assembled hybrid-encryption blob: the per-message AES key
// wrapped under the recipient's RSA public key, the CBC initialization
// vector, and the padded ciphertext.
//
// The wire form is the raw concatenation WrappedKey ‖ IV ‖ CipherBlock with
// no length prefixes and no version marker. A receiver must know the
// wrapped-key length (the recipient key's modulus size in bytes) in advance
// to split the blob; changing the key size silently breaks compatibility
// with previously issued packets.
type Packet struct {
	// WrappedKey is the RSA-OAEP ciphertext of the symmetric key. Its length
	// equals the modulus size of the recipient's public key.
	WrappedKey []byte
	// IV is the 16-byte CBC initialization vector.
	IV []byte
	// CipherBlock is the padded AES-CBC ciphertext, a multiple of 16 bytes.
	CipherBlock []byte
}

// Bytes serializes the packet into its wire form.
func (p Packet) Bytes() []byte {
	buf := make([]byte, 0, p.Len())
	buf = append(buf, p.WrappedKey...)
	buf = append(buf, p.IV...)
	buf = append(buf, p.CipherBlock...)
	return buf
}

// Len returns the wire-form length of the packet.
func (p Packet) Len() int {
	return len(p.WrappedKey) + len(p.IV) + len(p.CipherBlock)
}

// SplitPacket splits a wire-form blob back into its three segments given the
// wrapped-key length agreed out-of-band (256 for an RSA-2048 recipient key).
//
// The smallest valid packet is wrappedKeyLen + 16 (IV) + 16 (one padded
// block): even an empty payload pads up to a full block. Returns
// [ErrPacketTooShort] or [ErrPacketMisaligned] for blobs violating those
// bounds. The returned segments alias blob; they are not copied.
func SplitPacket(blob []byte, wrappedKeyLen int) (Packet, error) {
	if wrappedKeyLen <= 0 {
		return Packet{}, errors.New("wrapped-key length must be positive")
	}
	if len(blob) < wrappedKeyLen+IVLength+CipherBlockSize {
		return Packet{}, ErrPacketTooShort
	}
	if (len(blob)-wrappedKeyLen-IVLength)%CipherBlockSize != 0 {
		return Packet{}, ErrPacketMisaligned
	}

	return Packet{
		WrappedKey:  blob[:wrappedKeyLen],
		IV:          blob[wrappedKeyLen : wrappedKeyLen+IVLength],
		CipherBlock: blob[wrappedKeyLen+IVLength:],
	}, nil
}

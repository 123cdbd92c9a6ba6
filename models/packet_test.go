package models

import (
	"bytes"
	"errors"
	"testing"
)

func buildTestPacket() Packet {
	return Packet{
		WrappedKey:  bytes.Repeat([]byte{0xAA}, 256),
		IV:          bytes.Repeat([]byte{0xBB}, IVLength),
		CipherBlock: bytes.Repeat([]byte{0xCC}, 32),
	}
}

func TestPacket_BytesConcatenatesInOrder(t *testing.T) {
	p := buildTestPacket()
	blob := p.Bytes()

	if len(blob) != p.Len() {
		t.Fatalf("blob length = %d, want %d", len(blob), p.Len())
	}
	if !bytes.Equal(blob[:256], p.WrappedKey) {
		t.Fatalf("wrapped key is not the first segment")
	}
	if !bytes.Equal(blob[256:256+IVLength], p.IV) {
		t.Fatalf("IV is not the second segment")
	}
	if !bytes.Equal(blob[256+IVLength:], p.CipherBlock) {
		t.Fatalf("ciphertext is not the trailing segment")
	}
}

func TestSplitPacket_RoundTrip(t *testing.T) {
	p := buildTestPacket()

	got, err := SplitPacket(p.Bytes(), 256)
	if err != nil {
		t.Fatalf("SplitPacket error: %v", err)
	}
	if !bytes.Equal(got.WrappedKey, p.WrappedKey) ||
		!bytes.Equal(got.IV, p.IV) ||
		!bytes.Equal(got.CipherBlock, p.CipherBlock) {
		t.Fatalf("split segments do not match the assembled packet")
	}
}

func TestSplitPacket_TooShort(t *testing.T) {
	// One byte short of the minimum: wrapped key + IV + one padded block.
	blob := make([]byte, 256+IVLength+CipherBlockSize-1)

	_, err := SplitPacket(blob, 256)
	if !errors.Is(err, ErrPacketTooShort) {
		t.Fatalf("expected ErrPacketTooShort, got %v", err)
	}
}

func TestSplitPacket_MisalignedCiphertext(t *testing.T) {
	blob := make([]byte, 256+IVLength+CipherBlockSize+5)

	_, err := SplitPacket(blob, 256)
	if !errors.Is(err, ErrPacketMisaligned) {
		t.Fatalf("expected ErrPacketMisaligned, got %v", err)
	}
}

func TestSplitPacket_WrongKeyLengthChangesSegments(t *testing.T) {
	// The format carries no length prefix: splitting with a different agreed
	// key size silently yields different segments, not an error.
	p := buildTestPacket()

	got, err := SplitPacket(p.Bytes(), 128)
	if err != nil {
		t.Fatalf("SplitPacket error: %v", err)
	}
	if bytes.Equal(got.IV, p.IV) {
		t.Fatalf("expected the IV segment to shift under a wrong key length")
	}
}

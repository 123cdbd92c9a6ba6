// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"crypto/rsa"
	"fmt"
	"sync"

	"github.com/kiss-kedaya/log-system/internal/adapter"
	"github.com/kiss-kedaya/log-system/internal/crypto"
)

// logService is the private implementation of [LogService].
type logService struct {
	packets   crypto.PacketService
	collector adapter.LogCollector

	mu        sync.RWMutex
	publicKey *rsa.PublicKey
}

// NewLogService constructs a [LogService] from the crypto core and the
// transport adapter. The public key starts unset; every encryption attempt
// before [LogService.SetPublicKey] fails with [crypto.ErrNoPublicKey].
func NewLogService(packets crypto.PacketService, collector adapter.LogCollector) LogService {
	return &logService{packets: packets, collector: collector}
}

// SetPublicKey implements [LogService].
func (s *logService) SetPublicKey(publicKeyPEM string) error {
	key, err := crypto.ParsePublicKey(publicKeyPEM)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.publicKey = key
	s.mu.Unlock()
	return nil
}

// Encrypt implements [LogService].
func (s *logService) Encrypt(payload any) ([]byte, error) {
	key := s.key()
	if key == nil {
		return nil, crypto.ErrNoPublicKey
	}

	packet, err := s.packets.Seal(payload, key)
	if err != nil {
		return nil, fmt.Errorf("seal payload: %w", err)
	}

	return packet.Bytes(), nil
}

// Submit implements [LogService].
func (s *logService) Submit(ctx context.Context, payload any) error {
	blob, err := s.Encrypt(payload)
	if err != nil {
		return err
	}

	return s.collector.SubmitPacket(ctx, blob)
}

// key returns the current public-key handle under the read lock. The handle
// itself is immutable once parsed; the lock only guards the pointer swap.
func (s *logService) key() *rsa.PublicKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.publicKey
}

// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// ParsePublicKey parses a PEM-encoded RSA public key in SubjectPublicKeyInfo
// ("PUBLIC KEY") form. Every failure mode wraps [ErrKeyFormat] so callers can
// classify the error with errors.Is regardless of which parsing stage broke.
func ParsePublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyFormat)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key (%T)", ErrKeyFormat, parsed)
	}

	return key, nil
}

// Package secret seals channel integration credentials at rest.
package secret

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/akinloluwami/formdrop/internal/domain"
)

const nonceSize = 24

// ErrOpen is returned when a sealed blob fails authentication.
var ErrOpen = errors.New("secret: cannot open sealed credentials")

// Box seals and opens credentials with NaCl secretbox. The nonce is
// prepended to the ciphertext.
type Box struct {
	key [32]byte
}

// NewBox creates a Box using a 32-byte key.
func NewBox(key [32]byte) *Box {
	return &Box{key: key}
}

// Seal encodes creds as JSON and encrypts it.
func (b *Box) Seal(creds *domain.Credentials) ([]byte, error) {
	if creds == nil {
		return nil, fmt.Errorf("secret: seal: nil credentials")
	}

	plain, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("secret: marshal: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("secret: nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], plain, &nonce, &b.key), nil
}

// Open decrypts a blob produced by Seal. A nil blob means the integration
// is disconnected and yields nil credentials.
func (b *Box) Open(sealed []byte) (*domain.Credentials, error) {
	if sealed == nil {
		return nil, nil
	}
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, ErrOpen
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &b.key)
	if !ok {
		return nil, ErrOpen
	}

	var creds domain.Credentials
	if err := json.Unmarshal(plain, &creds); err != nil {
		return nil, fmt.Errorf("secret: unmarshal: %w", err)
	}
	return &creds, nil
}

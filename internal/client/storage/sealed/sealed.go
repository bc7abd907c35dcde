// Package sealed wraps any TokenStorage with passphrase-based encryption
// of the token value. The expiry stays in the clear so the session window
// can be checked without the passphrase; only the credential itself is
// sealed.
package sealed

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/rastroagro/rastro/internal/client/storage"
)

// Argon2id parameters for deriving the sealing key from a passphrase.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	keyLen        = 32

	// nonceSize is the standard AES-GCM nonce size.
	nonceSize = 12
)

// Storage decorates an inner TokenStorage, sealing the token value with
// AES-256-GCM before it reaches the inner layer.
type Storage struct {
	inner storage.TokenStorage
	key   []byte
}

// Compile-time check that Storage implements storage.TokenStorage
var _ storage.TokenStorage = (*Storage)(nil)

// DeriveKey derives a 32-byte sealing key from a passphrase and a
// per-install salt using Argon2id.
func DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("salt cannot be empty")
	}
	return argon2.IDKey([]byte(passphrase), salt, argon2Time, argon2Memory, argon2Threads, keyLen), nil
}

// New creates a sealed storage over inner. key must be exactly 32 bytes
// (see DeriveKey).
func New(inner storage.TokenStorage, key []byte) (*Storage, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("sealing key must be %d bytes, got %d", keyLen, len(key))
	}
	return &Storage{inner: inner, key: key}, nil
}

// Save seals the token value and stores the record in the inner storage.
func (s *Storage) Save(ctx context.Context, rec *storage.TokenRecord) error {
	if rec == nil {
		return fmt.Errorf("token record is nil")
	}

	sealedToken, err := s.seal([]byte(rec.Token))
	if err != nil {
		return fmt.Errorf("failed to seal token: %w", err)
	}

	// Copy so the caller's record keeps its plaintext token.
	cp := *rec
	cp.Token = base64.StdEncoding.EncodeToString(sealedToken)
	return s.inner.Save(ctx, &cp)
}

// Get retrieves the record from the inner storage and unseals the token.
func (s *Storage) Get(ctx context.Context) (*storage.TokenRecord, error) {
	rec, err := s.inner.Get(ctx)
	if err != nil {
		return nil, err
	}

	sealedToken, err := base64.StdEncoding.DecodeString(rec.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sealed token: %w", err)
	}

	token, err := s.unseal(sealedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal token: %w", err)
	}

	cp := *rec
	cp.Token = string(token)
	return &cp, nil
}

// Delete removes the record from the inner storage.
func (s *Storage) Delete(ctx context.Context) error {
	return s.inner.Delete(ctx)
}

// seal encrypts plaintext with AES-256-GCM.
// Output layout: nonce (12 bytes) || ciphertext || auth tag.
func (s *Storage) seal(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	result := make([]byte, 0, len(nonce)+len(ciphertext))
	result = append(result, nonce...)
	result = append(result, ciphertext...)
	return result, nil
}

// unseal decrypts data produced by seal, verifying the auth tag.
func (s *Storage) unseal(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("sealed data too short")
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := aesGCM.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("authentication failed or corrupted data: %w", err)
	}

	return plaintext, nil
}

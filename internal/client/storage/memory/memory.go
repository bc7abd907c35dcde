// Package memory provides an in-memory TokenStorage implementation,
// used in tests and for ephemeral sessions that should not touch disk.
package memory

import (
	"context"
	"sync"

	"github.com/rastroagro/rastro/internal/client/storage"
)

// Storage keeps the token record in process memory only.
type Storage struct {
	mu  sync.Mutex
	rec *storage.TokenRecord
}

// Compile-time check that Storage implements storage.TokenStorage
var _ storage.TokenStorage = (*Storage)(nil)

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{}
}

// Save stores a copy of the token record.
func (s *Storage) Save(ctx context.Context, rec *storage.TokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.rec = &cp
	return nil
}

// Get returns a copy of the stored record or storage.ErrTokenNotFound.
func (s *Storage) Get(ctx context.Context) (*storage.TokenRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec == nil {
		return nil, storage.ErrTokenNotFound
	}

	cp := *s.rec
	return &cp, nil
}

// Delete removes the stored record. Idempotent.
func (s *Storage) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec = nil
	return nil
}

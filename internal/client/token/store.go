// Package token implements the sliding-session token store: a fixed
// validity window that is pushed forward on every successful
// authenticated call, over a pluggable persistence backend.
package token

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rastroagro/rastro/internal/client/storage"
)

// DefaultTTL is the session validity window used when none is configured.
const DefaultTTL = 24 * time.Hour

// Store owns the bearer token's lifecycle and time-based validity.
// Expiry is always persisted as an absolute instant (Unix milliseconds)
// so repeated refreshes cannot compound clock drift.
type Store struct {
	storage storage.TokenStorage
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a token store over the given backend. A non-positive
// ttl falls back to DefaultTTL.
func NewStore(st storage.TokenStorage, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		storage: st,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the stored token, or ok=false when none is stored or the
// stored one has expired. An expired token is removed as a side effect,
// so the store never hands out a stale-but-present credential.
func (s *Store) Get(ctx context.Context) (string, bool) {
	rec, err := s.storage.Get(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			slog.Debug("token storage read failed", "error", err)
		}
		return "", false
	}

	if s.expired(rec) {
		if err := s.storage.Delete(ctx); err != nil {
			slog.Debug("failed to remove expired token", "error", err)
		}
		return "", false
	}

	return rec.Token, true
}

// Set stores the token with a fresh expiry of now + window, overwriting
// any prior value.
func (s *Store) Set(ctx context.Context, token string) error {
	return s.storage.Save(ctx, &storage.TokenRecord{
		Token:     token,
		ExpiresAt: s.now().Add(s.ttl).UnixMilli(),
	})
}

// Remove deletes the token and its expiry. Idempotent.
func (s *Store) Remove(ctx context.Context) error {
	return s.storage.Delete(ctx)
}

// IsAuthenticated reports whether a non-expired token is stored.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}

// IsExpired reports whether the stored token is past its window. A token
// without a recorded expiry, or no token at all, counts as expired.
func (s *Store) IsExpired(ctx context.Context) bool {
	rec, err := s.storage.Get(ctx)
	if err != nil {
		return true
	}
	return s.expired(rec)
}

// RefreshExpiry pushes the expiry forward to now + window without
// altering the token value. Called after every successful authenticated
// response to implement the sliding session.
func (s *Store) RefreshExpiry(ctx context.Context) error {
	rec, err := s.storage.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil
		}
		return err
	}

	rec.ExpiresAt = s.now().Add(s.ttl).UnixMilli()
	return s.storage.Save(ctx, rec)
}

func (s *Store) expired(rec *storage.TokenRecord) bool {
	if rec.ExpiresAt == 0 {
		return true
	}
	return s.now().UnixMilli() >= rec.ExpiresAt
}

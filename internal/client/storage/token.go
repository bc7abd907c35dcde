package storage

import (
	"context"
)

// TokenStorage defines the lowest persistence layer for the session token.
// It stores the record as-is and knows nothing about expiry windows; the
// sliding-session logic lives in the token package on top of it.
type TokenStorage interface {
	// Save stores the token record, overwriting any prior one.
	Save(ctx context.Context, rec *TokenRecord) error

	// Get retrieves the stored record.
	// Returns ErrTokenNotFound if no token is stored.
	Get(ctx context.Context) (*TokenRecord, error)

	// Delete removes the stored record. Deleting an absent record is not
	// an error.
	Delete(ctx context.Context) error
}

// TokenRecord is the persisted session credential. ExpiresAt is an
// absolute instant in Unix milliseconds, never a duration, so repeated
// refreshes cannot compound clock drift.
type TokenRecord struct {
	Token     string
	ExpiresAt int64
}

package boltdb

import (
	"context"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/rastroagro/rastro/internal/client/storage"
)

// Session bucket keys. The token and its expiry are stored as two separate
// string entries; the expiry is Unix milliseconds rendered as a string.
// These names are part of the on-disk layout and must stay stable across
// versions for sessions to survive upgrades.
var (
	keyAccessToken = []byte("access_token")
	keyExpiresAt   = []byte("expires_at")
)

// Save stores the token record, overwriting any prior one.
func (s *Storage) Save(ctx context.Context, rec *storage.TokenRecord) error {
	if rec == nil {
		return fmt.Errorf("token record is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyAccessToken, []byte(rec.Token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		expires := strconv.FormatInt(rec.ExpiresAt, 10)
		if err := bucket.Put(keyExpiresAt, []byte(expires)); err != nil {
			return fmt.Errorf("failed to save token expiry: %w", err)
		}

		return nil
	})
}

// Get retrieves the stored token record.
func (s *Storage) Get(ctx context.Context) (*storage.TokenRecord, error) {
	var rec *storage.TokenRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		token := bucket.Get(keyAccessToken)
		if token == nil {
			return storage.ErrTokenNotFound
		}

		rec = &storage.TokenRecord{Token: string(token)}

		// A token without a parseable expiry is left with ExpiresAt=0,
		// which the token store treats as already expired.
		if raw := bucket.Get(keyExpiresAt); raw != nil {
			if expires, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
				rec.ExpiresAt = expires
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Delete removes the stored token record. Idempotent.
func (s *Storage) Delete(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(keyAccessToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyExpiresAt); err != nil {
			return fmt.Errorf("failed to delete token expiry: %w", err)
		}

		return nil
	})
}

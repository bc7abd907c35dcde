package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var keyClientID = []byte("id")

// ClientID returns the stable per-install client identifier, generating and
// persisting a new one on first use. It is sent with every API request so
// the platform can correlate calls from the same installation.
func (s *Storage) ClientID(ctx context.Context) (string, error) {
	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClient)
		if bucket == nil {
			return fmt.Errorf("client bucket not found")
		}

		if existing := bucket.Get(keyClientID); existing != nil {
			id = string(existing)
			return nil
		}

		id = uuid.New().String()
		if err := bucket.Put(keyClientID, []byte(id)); err != nil {
			return fmt.Errorf("failed to save client id: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", err
	}

	return id, nil
}

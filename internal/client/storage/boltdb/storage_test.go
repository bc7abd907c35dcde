package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastroagro/rastro/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "rastro-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStorage_SaveGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := &storage.TokenRecord{Token: "tok1", ExpiresAt: 1234567890000}
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok1", got.Token)
	assert.Equal(t, int64(1234567890000), got.ExpiresAt)
}

func TestStorage_Save_Overwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &storage.TokenRecord{Token: "old", ExpiresAt: 1}))
	require.NoError(t, s.Save(ctx, &storage.TokenRecord{Token: "new", ExpiresAt: 2}))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, int64(2), got.ExpiresAt)
}

func TestStorage_Save_NilRecord(t *testing.T) {
	s := newTestStorage(t)

	err := s.Save(context.Background(), nil)
	assert.Error(t, err)
}

func TestStorage_Get_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background())
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &storage.TokenRecord{Token: "tok1", ExpiresAt: 1}))
	require.NoError(t, s.Delete(ctx))

	_, err := s.Get(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Deleting again is not an error
	require.NoError(t, s.Delete(ctx))
}

func TestStorage_ClientID_Stable(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.ClientID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := s.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

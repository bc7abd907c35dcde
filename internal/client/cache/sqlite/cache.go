// Package sqlite caches the last successful public tracking lookup per
// code, so traces remain viewable when the network is not. It is a
// read-through convenience, not a sync engine: entries are only ever
// replaced by a fresher server response.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// ErrNotCached indicates that no snapshot exists for the code.
var ErrNotCached = errors.New("tracking code not cached")

// Snapshot is one cached tracking payload.
type Snapshot struct {
	Codigo    string
	Payload   []byte
	FetchedAt time.Time
}

// Cache is the SQLite-backed tracking cache.
type Cache struct {
	db *sql.DB
}

// New opens (or creates) the cache database at dbPath and applies
// pending migrations. Use ":memory:" for an ephemeral cache in tests.
func New(ctx context.Context, dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single writer; WAL keeps concurrent readers cheap
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	cache := &Cache{db: db}

	if err := cache.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return cache, nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	return c.db.Close()
}

// runMigrations applies the embedded goose migrations.
func (c *Cache) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(c.db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// Put stores or replaces the snapshot for a code.
func (c *Cache) Put(ctx context.Context, codigo string, payload []byte, fetchedAt time.Time) error {
	query := `
		INSERT OR REPLACE INTO tracking_snapshots (codigo, payload, fetched_at)
		VALUES (?, ?, ?)
	`

	if _, err := c.db.ExecContext(ctx, query, codigo, payload, fetchedAt.UnixMilli()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Get retrieves the snapshot for a code.
// Returns ErrNotCached when the code was never fetched successfully.
func (c *Cache) Get(ctx context.Context, codigo string) (*Snapshot, error) {
	query := `
		SELECT codigo, payload, fetched_at
		FROM tracking_snapshots
		WHERE codigo = ?
	`

	snap := &Snapshot{}
	var fetchedAt int64

	err := c.db.QueryRowContext(ctx, query, codigo).Scan(&snap.Codigo, &snap.Payload, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	snap.FetchedAt = time.UnixMilli(fetchedAt)
	return snap, nil
}

// Prune deletes snapshots older than the retention period and returns
// how many were removed.
func (c *Cache) Prune(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention).UnixMilli()

	result, err := c.db.ExecContext(ctx, `DELETE FROM tracking_snapshots WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

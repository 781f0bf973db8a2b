// Package postgresstore keeps the storage keys in a single PostgreSQL
// key-value table. It is the "real backend" the storage abstraction was
// carved out for.
package postgresstore

import (
	"context"
	"database/sql"
	"fmt"

	"chaibisket/pkg/database"
	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage"
)

// Store persists values in the app_state table.
type Store struct {
	db     *database.DB
	logger *logger.Logger
}

// New ensures the backing table exists and returns a Postgres-backed store.
func New(db *database.DB, log *logger.Logger) (*Store, error) {
	s := &Store{
		db:     db,
		logger: log.WithComponent("postgresstore"),
	}

	query := `
        CREATE TABLE IF NOT EXISTS app_state (
            key        TEXT PRIMARY KEY,
            value      BYTEA NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `
	if _, err := db.Exec(query); err != nil {
		s.logger.Error("Failed to create app_state table", "error", err)
		return nil, fmt.Errorf("failed to create app_state table: %v", err)
	}

	return s, nil
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to query key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to query key %s: %v", key, err)
	}
	return value, nil
}

// Set upserts the value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query := `
        INSERT INTO app_state (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
    `
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		s.logger.Error("Failed to upsert key", "key", key, "error", err)
		return fmt.Errorf("failed to upsert key %s: %v", key, err)
	}

	s.logger.Debug("Stored key", "key", key, "bytes", len(value))
	return nil
}

// Remove deletes the value under key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = $1`, key); err != nil {
		s.logger.Error("Failed to delete key", "key", key, "error", err)
		return fmt.Errorf("failed to delete key %s: %v", key, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/simaogato/networth/internal/domain"
)

// kvStore implements domain.KeyValueStore
type kvStore struct {
	db *DB
}

// NewKeyValueStore creates a new PostgreSQL-backed key-value store
func NewKeyValueStore(db *DB) domain.KeyValueStore {
	return &kvStore{db: db}
}

// Load retrieves the value stored under key
func (r *kvStore) Load(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM kv_store
		WHERE name = $1
	`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load key %q: %w", key, err)
	}

	return value, true, nil
}

// Save stores value under key, replacing any previous value
func (r *kvStore) Save(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (name, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save key %q: %w", key, err)
	}

	return nil
}

package tracker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/simaogato/networth/internal/domain"
)

// loadCollection decodes the JSON array stored under key.
// An absent key yields an empty collection.
func loadCollection[T any](ctx context.Context, kv domain.KeyValueStore, key string) ([]T, error) {
	raw, found, err := kv.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", domain.ErrPersistence, key, err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrPersistence, key, err)
	}
	return items, nil
}

// saveCollection encodes items as a JSON array under key
func saveCollection[T any](ctx context.Context, kv domain.KeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrPersistence, key, err)
	}
	if err := kv.Save(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: save %s: %w", domain.ErrPersistence, key, err)
	}
	return nil
}

package memory

import (
	"context"
	"sync"

	"github.com/simaogato/networth/internal/domain"
)

// kvStore implements domain.KeyValueStore in process memory.
// Nothing survives a restart; used by tests and the ephemeral serve mode.
type kvStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKeyValueStore creates an empty in-memory key-value store
func NewKeyValueStore() domain.KeyValueStore {
	return &kvStore{values: make(map[string]string)}
}

// Load retrieves the value stored under key
func (s *kvStore) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Save stores value under key
func (s *kvStore) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

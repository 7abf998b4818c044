package memory

import (
	"context"
	"sync"

	"vidgram/internal/core/ports"
)

// MemorySessionStorage keeps session keys in process memory. Used in tests
// and when persistence across restarts is not wanted.
type MemorySessionStorage struct {
	values map[string]string
	mu     sync.RWMutex
}

func NewMemorySessionStorage() ports.SessionStorage {
	return &MemorySessionStorage{
		values: make(map[string]string),
	}
}

func (s *MemorySessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemorySessionStorage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *MemorySessionStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *MemorySessionStorage) Close() error {
	return nil
}

package cache

import (
	"context"
	"sync"
	"time"
)

// Store is a TTL'd key/value store used for short-lived server state such as
// cached guild-permission checks. Get returns "" for missing or expired keys.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type storedValue struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps entries in-process. Expired entries are dropped lazily on
// read; Sweep removes the rest and is run from the jobs scheduler.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]storedValue
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]storedValue)}
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = storedValue{value, time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	if !ok || time.Now().After(val.expiresAt) {
		delete(s.data, key)
		return "", nil
	}
	return val.value, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Sweep drops all expired entries and reports how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	now := time.Now()
	for k, v := range s.data {
		if now.After(v.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

package session

import (
	"bytes"
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Least recently used sessions are evicted once
// size is reached; entries never outlive maxTTL regardless of the ttl passed to Set.
type MemoryStore struct {
	cache *expirable.LRU[string, memoryEntry]
	now   func() time.Time
}

func NewMemoryStore(size int, maxTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		now:   time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, ok := m.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.cache.Remove(key)
		return nil, false, nil
	}
	return bytes.Clone(e.value), true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: bytes.Clone(value)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.cache.Add(key, e)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

package adapter

import (
	"context"
	"time"

	"quiz-deck/internal/domain"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired entries are evicted when no interval is given.
const DefaultCleanupInterval = time.Minute

// MemoryCacheAdapter is a process-local domain.Cache used when no Redis address is configured.
// A janitor goroutine evicts expired entries every cleanup interval.
type MemoryCacheAdapter struct {
	items *gocache.Cache
}

// NewMemoryCacheAdapter creates an empty in-memory cache. cleanupInterval <= 0 uses DefaultCleanupInterval.
func NewMemoryCacheAdapter(cleanupInterval time.Duration) *MemoryCacheAdapter {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &MemoryCacheAdapter{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (m *MemoryCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	s, ok := v.(string)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return s, nil
}

// Set stores value under key. A non-positive expiration keeps the entry until it is deleted.
func (m *MemoryCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	m.items.Set(key, value, expiration)
	return nil
}

func (m *MemoryCacheAdapter) Delete(ctx context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored entries, including expired ones the janitor has not evicted yet.
func (m *MemoryCacheAdapter) Len() int {
	return m.items.ItemCount()
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository is an in-memory outbound.CacheRepository with TTL support
type CacheRepository struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCacheRepository creates an empty in-memory cache
func NewCacheRepository() *CacheRepository {
	return &CacheRepository{
		entries: make(map[string]cacheEntry),
	}
}

var _ outbound.CacheRepository = (*CacheRepository)(nil)

// Get retrieves a cached value; expired entries count as missing
func (c *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.expired(entry) {
		return nil, appErrors.NewNotFoundError("cache key")
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Set stores a value; a zero ttl means no expiry
func (c *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := cacheEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Delete removes a cached value
func (c *CacheRepository) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Exists reports whether a live entry is cached under the key
func (c *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !c.expired(entry), nil
}

func (c *CacheRepository) expired(entry cacheEntry) bool {
	return !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)
}

package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemoryEntries bounds a MemoryCache created with a non-positive size.
const DefaultMemoryEntries = 256

// MemoryCache keeps at most a fixed number of entries, evicting the least
// recently used one when full. No entry outlives the cache-wide lifetime
// (TTLArtifact unless set with [WithMemoryTTL]); a shorter per-entry ttl
// passed to Set is honored on top of it.
type MemoryCache struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	ttl time.Duration
}

// WithMemoryTTL sets the longest time any entry is kept. A non-positive
// lifetime disables cache-wide expiry.
func WithMemoryTTL(ttl time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.ttl = ttl }
}

// NewMemoryCache creates an in-process cache holding up to maxEntries.
func NewMemoryCache(maxEntries int, opts ...MemoryOption) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryEntries
	}
	cfg := memoryConfig{ttl: TTLArtifact}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, memoryEntry](maxEntries, nil, cfg.ttl),
		now: time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return e.data, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := memoryEntry{data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, e)
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Len returns the number of stored entries, expired ones not yet swept
// included.
func (c *MemoryCache) Len() int { return c.lru.Len() }

func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}

var _ Cache = (*MemoryCache)(nil)

// Package faqcache holds the faq.Cache adapters: Valkey for shared
// deployments and an in-process cache for dev and tests.
package faqcache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yanqian/faq-service/internal/domain/faq"
)

// MemoryCache is a process-local faq.Cache built on go-cache.
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache constructs a cache that sweeps expired entries every
// cleanupInterval.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	return &MemoryCache{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// Get implements faq.Cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := c.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	payload, ok := value.([]byte)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

// Set implements faq.Cache.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// DeleteByPrefix implements faq.Cache.
func (c *MemoryCache) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	removed := 0
	for key := range c.items.Items() {
		if strings.HasPrefix(key, prefix) {
			c.items.Delete(key)
			removed++
		}
	}
	return removed, nil
}

var _ faq.Cache = (*MemoryCache)(nil)

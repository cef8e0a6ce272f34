package faq

import (
	"context"
	"time"
)

// Cache is the key-value store holding serialized listing pages.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeleteByPrefix removes every key starting with prefix and reports how
	// many were removed.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

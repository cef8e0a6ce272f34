package faqcache

import (
	"context"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faq-service/internal/domain/faq"
)

const (
	scanBatch = 500
	minTTL    = time.Second
)

// ValkeyCache stores listing pages in a Valkey or Redis server.
type ValkeyCache struct {
	client valkey.Client
}

// NewValkeyCache wraps an established client; the caller keeps ownership.
func NewValkeyCache(client valkey.Client) *ValkeyCache {
	return &ValkeyCache{client: client}
}

// Get implements faq.Cache.
func (c *ValkeyCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set implements faq.Cache. A non-positive ttl stores the key without expiry.
func (c *ValkeyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	builder := c.client.B().Set().Key(key).Value(valkey.BinaryString(value))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < minTTL {
			ttl = minTTL
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

// DeleteByPrefix walks the keyspace with SCAN rather than KEYS so the server
// is never blocked, deleting each batch as it is found.
func (c *ValkeyCache) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	pattern := escapeGlob(prefix) + "*"
	var (
		cursor  uint64
		removed int
	)
	for {
		entry, err := c.client.Do(ctx, c.client.B().Scan().Cursor(cursor).Match(pattern).Count(scanBatch).Build()).AsScanEntry()
		if err != nil {
			return removed, err
		}
		if len(entry.Elements) > 0 {
			n, err := c.client.Do(ctx, c.client.B().Del().Key(entry.Elements...).Build()).AsInt64()
			if err != nil {
				return removed, err
			}
			removed += int(n)
		}
		cursor = entry.Cursor
		if cursor == 0 {
			return removed, nil
		}
	}
}

// Ping checks connectivity.
func (c *ValkeyCache) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}

// escapeGlob quotes the characters SCAN MATCH treats as wildcards.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var _ faq.Cache = (*ValkeyCache)(nil)

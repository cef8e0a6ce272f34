package faqcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, found, err := cache.Get(ctx, "faqs:en:1:5")
	require.NoError(t, err)
	require.False(t, found)

	payload := []byte(`{"faqs":[]}`)
	require.NoError(t, cache.Set(ctx, "faqs:en:1:5", payload, time.Hour))
	payload[0] = 'X'

	got, found, err := cache.Get(ctx, "faqs:en:1:5")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `{"faqs":[]}`, string(got))
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "faqs:en:1:5", []byte("v"), 10*time.Millisecond))
	require.Eventually(t, func() bool {
		_, found, _ := cache.Get(ctx, "faqs:en:1:5")
		return !found
	}, time.Second, 5*time.Millisecond)
}

func TestMemoryCache_DeleteByPrefix(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()
	for _, key := range []string{"faqs:en:1:5", "faqs:hi:2:5", "faqs:bn:1:10", "faqsx:en:1:5", "other"} {
		require.NoError(t, cache.Set(ctx, key, []byte("v"), time.Hour))
	}

	removed, err := cache.DeleteByPrefix(ctx, "faqs:")
	require.NoError(t, err)
	require.Equal(t, 3, removed)

	for _, key := range []string{"faqs:en:1:5", "faqs:hi:2:5", "faqs:bn:1:10"} {
		_, found, _ := cache.Get(ctx, key)
		require.False(t, found, key)
	}
	for _, key := range []string{"faqsx:en:1:5", "other"} {
		_, found, _ := cache.Get(ctx, key)
		require.True(t, found, key)
	}

	removed, err = cache.DeleteByPrefix(ctx, "faqs:")
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestEscapeGlob(t *testing.T) {
	require.Equal(t, "faqs:", escapeGlob("faqs:"))
	require.Equal(t, `a\*b\?c\[d\]\\`, escapeGlob(`a*b?c[d]\`))
}

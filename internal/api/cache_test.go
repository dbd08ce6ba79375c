package api

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, "test:"), m
}

func TestRedisCacheSetGetInvalidate(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/rfqs", []byte(`{"rfqs":[]}`), []Tag{TagRFQ}, time.Minute))

	b, ok, err := c.Get(ctx, "/rfqs")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"rfqs":[]}`, string(b))

	require.NoError(t, c.Invalidate(ctx, TagRFQ))
	_, ok, err = c.Get(ctx, "/rfqs")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCacheInvalidateOnlyNamedTag(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/rfqs", []byte(`1`), []Tag{TagRFQ}, time.Minute))
	require.NoError(t, c.Set(ctx, "/vendors", []byte(`2`), []Tag{TagVendor}, time.Minute))

	require.NoError(t, c.Invalidate(ctx, TagRFQ))

	_, ok, err := c.Get(ctx, "/rfqs")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = c.Get(ctx, "/vendors")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisCacheTTLExpiry(t *testing.T) {
	c, m := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/contracts", []byte(`{}`), []Tag{TagContract}, time.Second))
	m.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx, "/contracts")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheSetGetInvalidate(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/bids/rfqs/r1", []byte(`{"bids":[]}`), []Tag{TagBid}, time.Minute))
	require.NoError(t, c.Set(ctx, "/invoices", []byte(`{}`), []Tag{TagInvoice}, time.Minute))

	b, ok, err := c.Get(ctx, "/bids/rfqs/r1")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"bids":[]}`, string(b))

	require.NoError(t, c.Invalidate(ctx, TagBid))
	_, ok, _ = c.Get(ctx, "/bids/rfqs/r1")
	require.False(t, ok)
	_, ok, _ = c.Get(ctx, "/invoices")
	require.True(t, ok)
}

func TestMemoryCacheEntryExpires(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte(`v`), []Tag{TagRFQ}, -time.Second))
	// negative ttl is clamped to one second; backdate by hand instead
	c.mu.Lock()
	c.entries["k"] = memoryEntry{val: []byte(`v`), expiresAt: time.Now().Add(-time.Minute)}
	c.mu.Unlock()

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

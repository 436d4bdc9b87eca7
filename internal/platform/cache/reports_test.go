package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, ttl time.Duration) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewReportCache(client, ttl), mr
}

func TestReportCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := testCache(t, time.Minute)

	key := Key("trial-balance", "2024-04-01..2024-04-30", "abc123")
	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	payload := []byte(`{"balanced":true}`)
	c.Set(ctx, key, payload)

	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestReportCacheKeySeparatesFingerprints(t *testing.T) {
	ctx := context.Background()
	c, _ := testCache(t, time.Minute)

	c.Set(ctx, Key("balance-sheet", "..", "fp-old"), []byte("old"))

	// A new journal entry changes the fingerprint, so the stale payload
	// is simply never looked up again.
	_, ok := c.Get(ctx, Key("balance-sheet", "..", "fp-new"))
	assert.False(t, ok)
}

func TestReportCacheEntriesExpire(t *testing.T) {
	ctx := context.Background()
	c, mr := testCache(t, time.Second)

	key := Key("profit-loss", "..", "fp")
	c.Set(ctx, key, []byte("x"))

	mr.FastForward(2 * time.Second)
	_, ok := c.Get(ctx, key)
	assert.False(t, ok)
}

func TestReportCacheNilClientDisablesCaching(t *testing.T) {
	ctx := context.Background()
	c := NewReportCache(nil, time.Minute)

	c.Set(ctx, "k", []byte("v"))
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	var nilCache *ReportCache
	nilCache.Set(ctx, "k", []byte("v"))
	_, ok = nilCache.Get(ctx, "k")
	assert.False(t, ok)
}

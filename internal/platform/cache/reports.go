package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache stores rendered report payloads keyed by statement name,
// period, and snapshot fingerprint. Because the fingerprint changes
// with any journal change, entries never go stale; the TTL only bounds
// memory.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache wraps the Redis client. A nil client disables caching.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Key builds the cache key for a report request.
func Key(statement, period, fingerprint string) string {
	return fmt.Sprintf("report:%s:%s:%s", statement, period, fingerprint)
}

// Get returns the cached payload, or (nil, false) on a miss.
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Misses and cache trouble look the same to the caller: cache
		// problems must never fail a report request.
		return nil, false
	}
	return data, true
}

// Set stores the payload. Failures are silently dropped: the cache is
// an optimization, not a dependency.
func (c *ReportCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Package cache memoizes computed timeline layouts and aligned series in
// Redis. The engine is a pure function of its inputs, so entries are keyed
// by a digest of those inputs and can be replayed safely; a nil client
// disables caching entirely.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stolik/internal/metrics"
)

// Cache wraps an optional Redis client.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// New creates a cache. A nil client or non-positive TTL disables it.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Enabled reports whether lookups will hit Redis.
func (c *Cache) Enabled() bool {
	return c != nil && c.redis != nil && c.ttl > 0
}

// Key builds a cache key from a prefix and the digest of the inputs.
func Key(prefix string, inputs ...any) string {
	h := sha1.New()
	enc := json.NewEncoder(h)
	for _, in := range inputs {
		// Encoding errors only occur for unsupported types; those inputs
		// simply don't contribute to the digest.
		_ = enc.Encode(in)
	}
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(h.Sum(nil)))
}

// Read fetches a cached value into out. Returns false on miss, disabled
// cache or undecodable payload.
func (c *Cache) Read(ctx context.Context, key string, out any) bool {
	if !c.Enabled() {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		metrics.IncCache("miss")
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		metrics.IncCache("miss")
		return false
	}
	metrics.IncCache("hit")
	return true
}

// Write stores a value under key; failures are silent, the next request
// just recomputes.
func (c *Cache) Write(ctx context.Context, key string, val any) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		metrics.IncCache("write_error")
	}
}

// Package cache provides a small TTL cache capability used in front of
// third-party API lookups. Values are raw bytes so a hit returns exactly
// what was stored.
package cache

import (
	"context"
	"time"
)

// Cache is the capability interface owned by proxy components. Implementations
// must treat entries older than their TTL as absent.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

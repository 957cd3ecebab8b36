package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis backs the cache capability with a shared Redis instance so multiple
// replicas hit the upstream at most once per TTL window.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if isMiss(err) {
		return nil, false
	}
	if err != nil {
		// Treat Redis trouble as a miss; the caller refetches from upstream.
		return nil, false
	}
	return b, true
}

// isMiss reports whether err is the go-redis key-not-found sentinel, wrapped
// or not.
func isMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_ = r.client.Set(ctx, r.prefix+key, value, ttl).Err()
}

var _ Cache = (*Redis)(nil)

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"hrdesk/internal/platform/logger"
)

const remoteOpTimeout = 2 * time.Second

// ConnectRedis opens a client for a redis:// URL and checks it answers.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewRedis builds a cache whose entries live in Redis, so every instance sees
// the same entries and invalidations. Entries expire after ttl. Redis errors
// degrade to loading from the source.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Cache {
	c := New()
	c.remote = rdb
	c.ttl = ttl
	return c
}

func loadRemote[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	raw, err := c.remote.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		slog.Warn("cache entry undecodable, reloading", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("cache read failed", "key", key, logger.Err(err))
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(loaded)
		if err != nil {
			return loaded, nil
		}
		if err := c.remote.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			slog.Warn("cache write failed", "key", key, logger.Err(err))
		}
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *Cache) remoteDelete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), remoteOpTimeout)
	defer cancel()
	if err := c.remote.Del(ctx, key).Err(); err != nil {
		slog.Warn("cache invalidate failed", "key", key, logger.Err(err))
	}
}

func (c *Cache) remoteDeletePrefix(prefix string) {
	ctx, cancel := context.WithTimeout(context.Background(), remoteOpTimeout)
	defer cancel()

	var keys []string
	iter := c.remote.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("cache prefix scan failed", "prefix", prefix, logger.Err(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.remote.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("cache prefix invalidate failed", "prefix", prefix, logger.Err(err))
	}
}

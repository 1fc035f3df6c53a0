// Package cache is the read-side query cache. Values are loaded on demand and
// concurrent misses for a key share one load. Mutations invalidate by key or
// prefix. Entries live in process memory unless the cache is built on Redis.
package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
	gen     uint64
	closed  bool
	group   singleflight.Group

	remote *redis.Client
	ttl    time.Duration
}

func New() *Cache {
	return &Cache{entries: make(map[string]any)}
}

func (c *Cache) get(key string) (any, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, c.gen, ok
}

// store keeps v only if nothing was invalidated since the load began.
func (c *Cache) store(key string, v any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.gen != gen {
		return
	}
	c.entries[key] = v
}

func (c *Cache) Invalidate(key string) {
	if c.remote != nil {
		c.remoteDelete(key)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	delete(c.entries, key)
}

func (c *Cache) InvalidatePrefix(prefix string) {
	if c.remote != nil {
		c.remoteDeletePrefix(prefix)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close drops every entry; later loads still work but are never stored.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
	clear(c.entries)
}

// Load returns the cached value for key or calls load once for all concurrent
// callers. Errors are returned to every waiter and never cached.
func Load[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}
	if c.remote != nil {
		return loadRemote(ctx, c, key, load)
	}
	if v, _, ok := c.get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	_, gen, _ := c.get(key)
	flightKey := key + "#" + strconv.FormatUint(gen, 10)
	v, err, _ := c.group.Do(flightKey, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, loaded, gen)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

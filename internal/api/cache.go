package api

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores unwrapped query payloads keyed by (endpoint, params) and
// indexed by resource tag for invalidation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, tags []Tag, ttl time.Duration) error
	Invalidate(ctx context.Context, tags ...Tag) error
}

// RedisCache implements Cache on Redis. Payloads live under "<prefix>q:<key>"
// and each tag keeps a set "<prefix>tag:<tag>" of member keys so invalidation
// can evict every query holding the tag.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis-backed query cache. Prefix may be empty.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "cache:"
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) entryKey(key string) string { return c.prefix + "q:" + key }
func (c *RedisCache) tagKey(tag Tag) string      { return c.prefix + "tag:" + string(tag) }

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, c.entryKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte, tags []Tag, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Second
	}
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.entryKey(key), val, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, c.tagKey(tag), key)
		// keep the tag index alive slightly longer than its members
		pipe.Expire(ctx, c.tagKey(tag), ttl+time.Minute)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RedisCache) Invalidate(ctx context.Context, tags ...Tag) error {
	for _, tag := range tags {
		members, err := c.client.SMembers(ctx, c.tagKey(tag)).Result()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(members)+1)
		for _, m := range members {
			keys = append(keys, c.entryKey(m))
		}
		keys = append(keys, c.tagKey(tag))
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}

// MemoryCache is the in-process fallback used when Redis is not configured
// and in tests.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	tags    map[Tag]map[string]struct{}
}

type memoryEntry struct {
	val       []byte
	expiresAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: map[string]memoryEntry{},
		tags:    map[Tag]map[string]struct{}{},
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.val, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, val []byte, tags []Tag, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Second
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{val: val, expiresAt: time.Now().Add(ttl)}
	for _, tag := range tags {
		if c.tags[tag] == nil {
			c.tags[tag] = map[string]struct{}{}
		}
		c.tags[tag][key] = struct{}{}
	}
	return nil
}

func (c *MemoryCache) Invalidate(ctx context.Context, tags ...Tag) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tag := range tags {
		for key := range c.tags[tag] {
			delete(c.entries, key)
		}
		delete(c.tags, tag)
	}
	return nil
}

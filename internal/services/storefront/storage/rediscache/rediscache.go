// Package rediscache stores derived catalog cache entries in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/services/storefront/storage"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "storefront:cache:"

// Cache is a storage.CacheStore backed by Redis. Entry expiry maps to the
// Redis key TTL.
type Cache struct {
	client *redis.Client
	now    func() time.Time
}

// New connects to the Redis server at addr.
func New(addr string) (*Cache, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr})), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client, now: time.Now}
}

// Ping checks the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("redis cache is not configured")
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection pool.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

type envelope struct {
	Scope       string          `json:"scope"`
	Payload     json.RawMessage `json:"payload"`
	RefreshedAt time.Time       `json:"refreshed_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// GetCacheEntry loads a cache entry. A missing or expired key is a miss.
func (c *Cache) GetCacheEntry(ctx context.Context, key string) (storage.CacheEntry, bool, error) {
	if c == nil || c.client == nil {
		return storage.CacheEntry{}, false, fmt.Errorf("redis cache is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return storage.CacheEntry{}, false, nil
	}
	if err != nil {
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return storage.CacheEntry{}, false, fmt.Errorf("decode cache entry: %w", err)
	}
	return storage.CacheEntry{
		Key:         key,
		Scope:       env.Scope,
		Payload:     []byte(env.Payload),
		RefreshedAt: env.RefreshedAt,
		ExpiresAt:   env.ExpiresAt,
	}, true, nil
}

// PutCacheEntry stores entry until its expiry. Payloads must be JSON.
func (c *Cache) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("redis cache is not configured")
	}
	entry.Key = strings.TrimSpace(entry.Key)
	if entry.Key == "" {
		return fmt.Errorf("cache key is required")
	}
	if strings.TrimSpace(entry.Scope) == "" {
		return fmt.Errorf("cache scope is required")
	}
	if !json.Valid(entry.Payload) {
		return fmt.Errorf("cache payload must be json")
	}
	now := c.now()
	ttl := entry.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return fmt.Errorf("cache entry already expired")
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = now.UTC()
	}
	raw, err := json.Marshal(envelope{
		Scope:       strings.TrimSpace(entry.Scope),
		Payload:     json.RawMessage(entry.Payload),
		RefreshedAt: entry.RefreshedAt.UTC(),
		ExpiresAt:   entry.ExpiresAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+entry.Key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

var (
	_ storage.CacheStore = (*Cache)(nil)
	_ storage.Pinger     = (*Cache)(nil)
)

// Package catalogcache serves the public product listing through a
// read-through cache in front of the catalog API.
package catalogcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/louisbranch/storefront/internal/platform/timeouts"
	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/metrics"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
	"github.com/rs/zerolog"
)

const (
	// DefaultTTL is how long a cached listing stays fresh.
	DefaultTTL = 60 * time.Second

	cacheKey   = "catalog:list-all"
	cacheScope = "catalog"
)

// Source loads the listing from the catalog API.
type Source interface {
	ListAllProducts(ctx context.Context) ([]backendapi.Product, error)
}

// Config wires a Catalog.
type Config struct {
	Source Source
	// Store is optional; without one every call reaches the source.
	Store storage.CacheStore
	// Backend labels cache metrics, e.g. "redis" or "sqlite".
	Backend string
	TTL     time.Duration
	Logger  zerolog.Logger
}

// Catalog is a read-through product listing cache.
type Catalog struct {
	source  Source
	store   storage.CacheStore
	backend string
	ttl     time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

// New builds a Catalog.
func New(cfg Config) (*Catalog, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("catalog source is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	backend := cfg.Backend
	if backend == "" {
		backend = "none"
	}
	return &Catalog{
		source:  cfg.Source,
		store:   cfg.Store,
		backend: backend,
		ttl:     ttl,
		logger:  cfg.Logger,
		now:     time.Now,
	}, nil
}

// ListAllProducts returns the cached listing, falling back to the source on
// a miss or a cache failure and backfilling the cache afterwards.
func (c *Catalog) ListAllProducts(ctx context.Context) ([]backendapi.Product, error) {
	if products, ok := c.lookup(ctx); ok {
		return products, nil
	}
	products, err := c.source.ListAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.backfill(ctx, products)
	return products, nil
}

func (c *Catalog) lookup(ctx context.Context) ([]backendapi.Product, bool) {
	if c.store == nil {
		return nil, false
	}
	cacheCtx, cancel := context.WithTimeout(ctx, timeouts.CacheRequest)
	defer cancel()

	entry, found, err := c.store.GetCacheEntry(cacheCtx, cacheKey)
	if err != nil {
		metrics.ObserveCacheLookup(c.backend, "error")
		c.logger.Warn().Err(err).Str("backend", c.backend).Msg("catalog cache read failed")
		return nil, false
	}
	if !found {
		metrics.ObserveCacheLookup(c.backend, "miss")
		return nil, false
	}
	var products []backendapi.Product
	if err := json.Unmarshal(entry.Payload, &products); err != nil {
		metrics.ObserveCacheLookup(c.backend, "error")
		c.logger.Warn().Err(err).Str("backend", c.backend).Msg("catalog cache entry unreadable")
		return nil, false
	}
	metrics.ObserveCacheLookup(c.backend, "hit")
	return products, true
}

func (c *Catalog) backfill(ctx context.Context, products []backendapi.Product) {
	if c.store == nil {
		return
	}
	if products == nil {
		products = []backendapi.Product{}
	}
	payload, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache encode failed")
		return
	}
	cacheCtx, cancel := context.WithTimeout(ctx, timeouts.CacheRequest)
	defer cancel()

	now := c.now().UTC()
	if err := c.store.PutCacheEntry(cacheCtx, storage.CacheEntry{
		Key:         cacheKey,
		Scope:       cacheScope,
		Payload:     payload,
		RefreshedAt: now,
		ExpiresAt:   now.Add(c.ttl),
	}); err != nil {
		c.logger.Warn().Err(err).Str("backend", c.backend).Msg("catalog cache write failed")
	}
}

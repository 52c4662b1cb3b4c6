package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	cache := NewWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}))
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache, server
}

func TestNewRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := New(" "); err == nil {
		t.Fatal("expected error")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	t.Parallel()

	cache, server := newTestCache(t)
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	entry := storage.CacheEntry{
		Key:         "catalog:all",
		Scope:       "catalog",
		Payload:     []byte(`[{"id":"1"}]`),
		RefreshedAt: now,
		ExpiresAt:   now.Add(time.Minute),
	}
	if err := cache.PutCacheEntry(ctx, entry); err != nil {
		t.Fatalf("PutCacheEntry() error = %v", err)
	}
	if ttl := server.TTL(keyPrefix + "catalog:all"); ttl != time.Minute {
		t.Fatalf("TTL = %v, want %v", ttl, time.Minute)
	}

	got, found, err := cache.GetCacheEntry(ctx, "catalog:all")
	if err != nil || !found {
		t.Fatalf("GetCacheEntry() found = %v, err = %v", found, err)
	}
	if diff := cmp.Diff(entry, got); diff != "" {
		t.Fatalf("GetCacheEntry() mismatch (-want +got):\n%s", diff)
	}

	server.FastForward(2 * time.Minute)
	if _, found, err := cache.GetCacheEntry(ctx, "catalog:all"); err != nil || found {
		t.Fatalf("expired GetCacheEntry() found = %v, err = %v", found, err)
	}
}

func TestPutRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Minute)

	tests := []storage.CacheEntry{
		{Scope: "catalog", Payload: []byte("[]"), ExpiresAt: expires},
		{Key: "k", Payload: []byte("[]"), ExpiresAt: expires},
		{Key: "k", Scope: "catalog", Payload: []byte("not json"), ExpiresAt: expires},
		{Key: "k", Scope: "catalog", Payload: []byte("[]"), ExpiresAt: time.Now().Add(-time.Second)},
	}
	for i, entry := range tests {
		if err := cache.PutCacheEntry(ctx, entry); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestErrorsWhenServerDown(t *testing.T) {
	t.Parallel()

	cache, server := newTestCache(t)
	server.Close()

	if err := cache.Ping(context.Background()); err == nil {
		t.Fatal("Ping() error = nil, want error")
	}
	if _, _, err := cache.GetCacheEntry(context.Background(), "catalog:all"); err == nil {
		t.Fatal("GetCacheEntry() error = nil, want error")
	}
}

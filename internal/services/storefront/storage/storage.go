package storage

import (
	"context"
	"time"
)

// DefaultStoreName is shown until a vendor saves store settings.
const DefaultStoreName = "My Awesome Store"

// SessionUser is the user snapshot kept with a session.
type SessionUser struct {
	ID       string
	Name     string
	Email    string
	Role     string
	ImageURL string
}

// Session binds a browser cookie to a backend bearer token.
type Session struct {
	ID        string
	Token     string
	User      SessionUser
	CreatedAt time.Time
	ExpiresAt time.Time
}

// StoreSettings is a vendor's storefront profile.
type StoreSettings struct {
	VendorKey   string
	Name        string
	Description string
	UpdatedAt   time.Time
}

// CacheEntry stores one derived payload with its freshness window.
type CacheEntry struct {
	Key         string
	Scope       string
	Payload     []byte
	RefreshedAt time.Time
	ExpiresAt   time.Time
}

// SessionStore persists browser sessions. Expired sessions load as missing.
type SessionStore interface {
	SaveSession(ctx context.Context, session Session) error
	LoadSession(ctx context.Context, sessionID string) (Session, bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// StoreSettingsStore persists vendor store settings.
type StoreSettingsStore interface {
	GetStoreSettings(ctx context.Context, vendorKey string) (StoreSettings, error)
	PutStoreSettings(ctx context.Context, settings StoreSettings) error
}

// CacheStore persists derived cache payloads. Expired entries load as missing.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, key string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
}

// Pinger reports backing store readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/storefront/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
	"github.com/louisbranch/storefront/internal/services/storefront/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed storefront persistence.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a storefront SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// SaveSession upserts a session.
func (s *Store) SaveSession(ctx context.Context, session storage.Session) error {
	if err := s.ready(); err != nil {
		return err
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.clock()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO web_sessions (
		    id, access_token, user_id, user_name, user_email, user_role, user_image_url, created_at, expires_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    access_token = excluded.access_token,
		    user_id = excluded.user_id,
		    user_name = excluded.user_name,
		    user_email = excluded.user_email,
		    user_role = excluded.user_role,
		    user_image_url = excluded.user_image_url,
		    expires_at = excluded.expires_at`,
		session.ID,
		session.Token,
		strings.TrimSpace(session.User.ID),
		strings.TrimSpace(session.User.Name),
		strings.TrimSpace(session.User.Email),
		strings.TrimSpace(session.User.Role),
		strings.TrimSpace(session.User.ImageURL),
		timeToUnixMillis(session.CreatedAt),
		timeToUnixMillis(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns a live session. Expired rows are reported as missing.
func (s *Store) LoadSession(ctx context.Context, sessionID string) (storage.Session, bool, error) {
	if err := s.ready(); err != nil {
		return storage.Session{}, false, err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storage.Session{}, false, nil
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, access_token, user_id, user_name, user_email, user_role, user_image_url, created_at, expires_at
		 FROM web_sessions
		 WHERE id = ? AND expires_at > ?`,
		sessionID,
		timeToUnixMillis(s.clock()),
	)

	var session storage.Session
	var createdAt, expiresAt int64
	if err := row.Scan(
		&session.ID,
		&session.Token,
		&session.User.ID,
		&session.User.Name,
		&session.User.Email,
		&session.User.Role,
		&session.User.ImageURL,
		&createdAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Session{}, false, nil
		}
		return storage.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	return session, true, nil
}

// DeleteSession removes a session. Missing sessions are not an error.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, strings.TrimSpace(sessionID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions prunes sessions that expired at or before now.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, timeToUnixMillis(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count expired sessions: %w", err)
	}
	return deleted, nil
}

// GetStoreSettings returns a vendor's settings, or defaults when none exist.
func (s *Store) GetStoreSettings(ctx context.Context, vendorKey string) (storage.StoreSettings, error) {
	if err := s.ready(); err != nil {
		return storage.StoreSettings{}, err
	}
	vendorKey = strings.TrimSpace(vendorKey)
	if vendorKey == "" {
		return storage.StoreSettings{}, fmt.Errorf("vendor key is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT vendor_key, store_name, store_description, updated_at
		 FROM store_settings
		 WHERE vendor_key = ?`,
		vendorKey,
	)
	settings := storage.StoreSettings{}
	var updatedAt int64
	if err := row.Scan(&settings.VendorKey, &settings.Name, &settings.Description, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.StoreSettings{VendorKey: vendorKey, Name: storage.DefaultStoreName}, nil
		}
		return storage.StoreSettings{}, fmt.Errorf("get store settings: %w", err)
	}
	settings.UpdatedAt = unixMillisToTime(updatedAt)
	return settings, nil
}

// PutStoreSettings upserts a vendor's settings. Last write wins.
func (s *Store) PutStoreSettings(ctx context.Context, settings storage.StoreSettings) error {
	if err := s.ready(); err != nil {
		return err
	}
	settings.VendorKey = strings.TrimSpace(settings.VendorKey)
	if settings.VendorKey == "" {
		return fmt.Errorf("vendor key is required")
	}
	settings.Name = strings.TrimSpace(settings.Name)
	if settings.Name == "" {
		return fmt.Errorf("store name is required")
	}
	if settings.UpdatedAt.IsZero() {
		settings.UpdatedAt = s.clock()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO store_settings (vendor_key, store_name, store_description, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(vendor_key) DO UPDATE SET
		   store_name = excluded.store_name,
		   store_description = excluded.store_description,
		   updated_at = excluded.updated_at`,
		settings.VendorKey,
		settings.Name,
		strings.TrimSpace(settings.Description),
		timeToUnixMillis(settings.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put store settings: %w", err)
	}
	return nil
}

// GetCacheEntry loads a live cache entry by key.
func (s *Store) GetCacheEntry(ctx context.Context, key string) (storage.CacheEntry, bool, error) {
	if err := s.ready(); err != nil {
		return storage.CacheEntry{}, false, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT cache_key, scope, payload_json, refreshed_at, expires_at
		 FROM cache_entries
		 WHERE cache_key = ? AND expires_at > ?`,
		key,
		timeToUnixMillis(s.clock()),
	)
	var entry storage.CacheEntry
	var refreshedAt, expiresAt int64
	if err := row.Scan(&entry.Key, &entry.Scope, &entry.Payload, &refreshedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CacheEntry{}, false, nil
		}
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.RefreshedAt = unixMillisToTime(refreshedAt)
	entry.ExpiresAt = unixMillisToTime(expiresAt)
	return entry, true, nil
}

// PutCacheEntry upserts a cache entry.
func (s *Store) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	entry.Key = strings.TrimSpace(entry.Key)
	if entry.Key == "" {
		return fmt.Errorf("cache key is required")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.Scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if len(entry.Payload) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.ExpiresAt.IsZero() {
		return fmt.Errorf("cache expiry is required")
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = s.clock()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO cache_entries (cache_key, scope, payload_json, refreshed_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		    scope = excluded.scope,
		    payload_json = excluded.payload_json,
		    refreshed_at = excluded.refreshed_at,
		    expires_at = excluded.expires_at`,
		entry.Key,
		entry.Scope,
		entry.Payload,
		timeToUnixMillis(entry.RefreshedAt),
		timeToUnixMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var (
	_ storage.SessionStore       = (*Store)(nil)
	_ storage.StoreSettingsStore = (*Store)(nil)
	_ storage.CacheStore         = (*Store)(nil)
	_ storage.Pinger             = (*Store)(nil)
)

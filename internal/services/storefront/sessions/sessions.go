// Package sessions issues, resolves and expires storefront web sessions.
//
// A session pairs an opaque cookie id with the backend bearer token and a
// snapshot of the signed-in user. Tokens stay server-side.
package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/storefront/internal/platform/timeouts"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
	"github.com/rs/zerolog"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

// Manager wraps a SessionStore with id generation and expiry policy.
type Manager struct {
	store  storage.SessionStore
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewManager builds a session manager. A non-positive ttl uses DefaultTTL.
func NewManager(store storage.SessionStore, ttl time.Duration, logger zerolog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create stores a new session for token and viewer. A token that expires
// sooner than the session lifetime caps the session.
func (m *Manager) Create(ctx context.Context, token string, viewer module.Viewer, tokenExpiry time.Time) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, fmt.Errorf("session store is not configured")
	}
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)
	if !tokenExpiry.IsZero() && tokenExpiry.Before(expiresAt) {
		expiresAt = tokenExpiry.UTC()
	}
	session := storage.Session{
		ID:        m.newID(),
		Token:     strings.TrimSpace(token),
		User:      UserFromViewer(viewer),
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := m.store.SaveSession(ctx, session); err != nil {
		return storage.Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Load returns the live session for id.
func (m *Manager) Load(ctx context.Context, id string) (storage.Session, bool, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, false, nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Session{}, false, nil
	}
	return m.store.LoadSession(ctx, id)
}

// End deletes the session for id.
func (m *Manager) End(ctx context.Context, id string) error {
	if m == nil || m.store == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return m.store.DeleteSession(ctx, id)
}

// UpdateUser replaces the cached user snapshot of a live session.
func (m *Manager) UpdateUser(ctx context.Context, id string, viewer module.Viewer) error {
	session, ok, err := m.Load(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("session %q not found", id)
	}
	session.User = UserFromViewer(viewer)
	return m.store.SaveSession(ctx, session)
}

// Sweep prunes expired sessions once.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	if m == nil || m.store == nil {
		return 0, nil
	}
	return m.store.DeleteExpiredSessions(ctx, m.now().UTC())
}

// RunSweeper prunes expired sessions every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = timeouts.SessionSweep
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := m.Sweep(ctx)
			if err != nil {
				m.logger.Warn().Err(err).Msg("sweep expired sessions")
				continue
			}
			if deleted > 0 {
				m.logger.Debug().Int64("deleted", deleted).Msg("swept expired sessions")
			}
		}
	}
}

// UserFromViewer converts header viewer state into the stored snapshot.
func UserFromViewer(viewer module.Viewer) storage.SessionUser {
	return storage.SessionUser{
		ID:       strings.TrimSpace(viewer.UserID),
		Name:     strings.TrimSpace(viewer.Name),
		Email:    strings.TrimSpace(viewer.Email),
		Role:     strings.TrimSpace(viewer.Role),
		ImageURL: strings.TrimSpace(viewer.ImageURL),
	}
}

// ViewerFromSession converts a stored session into signed-in viewer state.
func ViewerFromSession(session storage.Session) module.Viewer {
	return module.Viewer{
		SignedIn: true,
		UserID:   session.User.ID,
		Name:     session.User.Name,
		Email:    session.User.Email,
		Role:     session.User.Role,
		ImageURL: session.User.ImageURL,
	}
}

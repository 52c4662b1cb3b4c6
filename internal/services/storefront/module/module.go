// Package module defines the feature contract used by storefront composition.
package module

import (
	"context"
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/rs/zerolog"
)

// Viewer contains header chrome data for the current visitor.
type Viewer struct {
	SignedIn bool
	UserID   string
	Name     string
	Email    string
	Role     string
	ImageURL string
}

// Principal is the authenticated caller as seen by gateways: the backend
// bearer token plus the cached user snapshot.
type Principal struct {
	SessionID string
	Token     string
	Viewer    Viewer
}

// ResolveViewer resolves header viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request carries a live session.
type ResolveSignedIn func(*http.Request) bool

// ResolvePrincipal resolves the authenticated principal for a request.
type ResolvePrincipal func(*http.Request) (Principal, bool)

// ResolveRole resolves the signed-in role for a request.
type ResolveRole func(*http.Request) string

// EndSession drops the server-side session behind a request. It is used
// when the backend rejects the bearer token.
type EndSession func(context.Context, *http.Request) error

// Dependencies carries the request resolvers and shared settings every
// module handler needs.
type Dependencies struct {
	ResolveViewer       ResolveViewer
	ResolvePrincipal    ResolvePrincipal
	EndSession          EndSession
	RequestSchemePolicy requestmeta.SchemePolicy
	Currency            string
	Logger              zerolog.Logger
}

// Mount describes a module route mount. Prefix is a subtree ending in "/";
// Paths lists exact paths for modules that own several top-level routes.
type Mount struct {
	Prefix  string
	Paths   []string
	Handler http.Handler
}

// Module declares the minimum contract required by storefront composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}

// RoleRestricted is an optional interface for protected modules that only
// serve some roles. Composition answers other roles with a forbidden page.
type RoleRestricted interface {
	AllowedRoles() []string
}

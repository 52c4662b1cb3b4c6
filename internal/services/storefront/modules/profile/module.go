// Package profile serves the signed-in user's profile view and editor.
package profile

import (
	"net/http"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// Module provides profile routes for every role.
type Module struct {
	gateway  ProfileGateway
	sessions SessionRefresher
	base     modulehandler.Base
}

// New returns a profile module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a profile module with explicit gateway and handler
// dependencies. sessions may be nil; the cached user snapshot is then left
// as is.
func NewWithGateway(gateway ProfileGateway, sessions SessionRefresher, base modulehandler.Base) Module {
	return Module{gateway: gateway, sessions: sessions, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Healthy reports whether the profile module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.sessions), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProfilePrefix, Handler: mux}, nil
}

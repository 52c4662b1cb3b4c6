// Package publicauth serves sign-in, sign-up, password recovery and sign-out.
package publicauth

import (
	"net/http"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// Module provides the unauthenticated account routes.
type Module struct {
	gateway  AuthGateway
	sessions SessionIssuer
	tokens   TokenInspector
	base     publichandler.Base
}

// New returns a publicauth module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a publicauth module with explicit dependencies.
func NewWithGateway(gateway AuthGateway, sessions SessionIssuer, tokens TokenInspector, base publichandler.Base) Module {
	return Module{gateway: gateway, sessions: sessions, tokens: tokens, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "publicauth" }

// Healthy reports whether sign-in can reach the backend and a session store.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.sessions == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires publicauth route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.sessions, m.tokens), m.base)
	registerRoutes(mux, h)
	return module.Mount{
		Paths: []string{
			routepath.Login,
			routepath.Register,
			routepath.ForgotPassword,
			routepath.ResetPassword,
			routepath.Logout,
		},
		Handler: mux,
	}, nil
}

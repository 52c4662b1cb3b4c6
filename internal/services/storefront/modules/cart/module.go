// Package cart serves the buyer shopping cart and the read-only checkout
// summary.
package cart

import (
	"net/http"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// Module provides buyer cart routes.
type Module struct {
	gateway CartGateway
	base    modulehandler.Base
}

// New returns a cart module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a cart module with explicit gateway and handler dependencies.
func NewWithGateway(gateway CartGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "cart" }

// AllowedRoles restricts the cart to buyers.
func (Module) AllowedRoles() []string { return []string{identity.RoleBuyer.String()} }

// Healthy reports whether the cart module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires cart route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.CartPrefix, Handler: mux}, nil
}

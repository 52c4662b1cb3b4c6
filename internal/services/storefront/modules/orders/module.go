// Package orders serves the buyer's order history.
package orders

import (
	"net/http"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// Module provides buyer order routes.
type Module struct {
	gateway OrderGateway
	base    modulehandler.Base
}

// New returns an orders module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns an orders module with explicit gateway and handler dependencies.
func NewWithGateway(gateway OrderGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "orders" }

// AllowedRoles restricts order history to buyers.
func (Module) AllowedRoles() []string { return []string{identity.RoleBuyer.String()} }

// Healthy reports whether the orders module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires order route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.OrdersPrefix, Handler: mux}, nil
}

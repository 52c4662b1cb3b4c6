// Package catalog serves public product browsing and product detail pages.
package catalog

import (
	"net/http"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// Module provides product listing and detail routes.
type Module struct {
	gateway ProductGateway
	base    publichandler.Base
}

// New returns a catalog module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a catalog module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ProductGateway, base publichandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "catalog" }

// Healthy reports whether the catalog module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires catalog route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProductsPrefix, Handler: mux}, nil
}

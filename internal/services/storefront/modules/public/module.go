// Package public serves the anonymous landing, support and health routes.
package public

import (
	"net/http"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// Module provides the root, support and health routes.
type Module struct {
	gateway CatalogGateway
	base    publichandler.Base
}

// New returns a public module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a public module with explicit gateway and handler dependencies.
func NewWithGateway(gateway CatalogGateway, base publichandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Healthy reports whether the featured catalog has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

// Package modules assembles the storefront feature modules.
package modules

import (
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/admin"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/cart"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/catalog"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/dashboard"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/orders"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/profile"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/public"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/publicauth"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/vendor"
	"github.com/louisbranch/storefront/internal/services/storefront/modules/wishlist"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
	"github.com/louisbranch/storefront/internal/services/storefront/sessions"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
)

// Module is the composition contract re-exported for callers.
type Module = module.Module

// Dependencies is the shared handler dependency set.
type Dependencies = module.Dependencies

// ProductSource lists the whole catalog, usually through the cache.
type ProductSource interface {
	public.ProductSource
}

// Services are the backends modules reach through their gateways. Nil
// fields leave the dependent modules in degraded mode.
type Services struct {
	Backend       *backendapi.Client
	Catalog       ProductSource
	Sessions      *sessions.Manager
	StoreSettings storage.StoreSettingsStore
	Tokens        identity.TokenInspector
}

// DefaultPublicModules returns the anonymous storefront modules.
func DefaultPublicModules(deps Dependencies, services Services) []Module {
	base := publichandler.NewBase(deps)
	var (
		catalogPublic = public.NewAPIGateway(nil)
		catalogList   = catalog.NewAPIGateway(nil)
		auth          = publicauth.NewAPIGateway(nil)
	)
	if services.Catalog != nil {
		catalogPublic = public.NewAPIGateway(services.Catalog)
		catalogList = catalog.NewAPIGateway(services.Catalog)
	}
	if services.Backend != nil {
		auth = publicauth.NewAPIGateway(services.Backend)
	}
	var issuer publicauth.SessionIssuer
	if services.Sessions != nil {
		issuer = services.Sessions
	}
	return []Module{
		public.NewWithGateway(catalogPublic, base),
		publicauth.NewWithGateway(auth, issuer, services.Tokens, base),
		catalog.NewWithGateway(catalogList, base),
	}
}

// DefaultProtectedModules returns the signed-in modules mounted under /app/.
func DefaultProtectedModules(deps Dependencies, services Services) []Module {
	base := modulehandler.NewBase(deps)
	client := services.Backend
	var refresher profile.SessionRefresher
	if services.Sessions != nil {
		refresher = services.Sessions
	}
	return []Module{
		dashboard.NewWithGateway(dashboardGateway(client), base),
		cart.NewWithGateway(cartGateway(client), base),
		wishlist.NewWithGateway(wishlistGateway(client), base),
		orders.NewWithGateway(ordersGateway(client), base),
		profile.NewWithGateway(profileGateway(client), refresher, base),
		vendor.NewWithGateway(vendorGateway(client), services.StoreSettings, base),
		admin.NewWithGateway(adminGateway(client), base),
	}
}

// The helpers below keep a nil *backendapi.Client from becoming a non-nil
// interface value.

func dashboardGateway(client *backendapi.Client) dashboard.StatsGateway {
	if client == nil {
		return dashboard.NewAPIGateway(nil)
	}
	return dashboard.NewAPIGateway(client)
}

func cartGateway(client *backendapi.Client) cart.CartGateway {
	if client == nil {
		return cart.NewAPIGateway(nil)
	}
	return cart.NewAPIGateway(client)
}

func wishlistGateway(client *backendapi.Client) wishlist.WishlistGateway {
	if client == nil {
		return wishlist.NewAPIGateway(nil)
	}
	return wishlist.NewAPIGateway(client)
}

func ordersGateway(client *backendapi.Client) orders.OrderGateway {
	if client == nil {
		return orders.NewAPIGateway(nil)
	}
	return orders.NewAPIGateway(client)
}

func profileGateway(client *backendapi.Client) profile.ProfileGateway {
	if client == nil {
		return profile.NewAPIGateway(nil)
	}
	return profile.NewAPIGateway(client)
}

func vendorGateway(client *backendapi.Client) vendor.ProductGateway {
	if client == nil {
		return vendor.NewAPIGateway(nil)
	}
	return vendor.NewAPIGateway(client)
}

func adminGateway(client *backendapi.Client) admin.UserGateway {
	if client == nil {
		return admin.NewAPIGateway(nil)
	}
	return admin.NewAPIGateway(client)
}

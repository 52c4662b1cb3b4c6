package dashboard

import (
	"context"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
)

type fakeGateway struct {
	cart      int
	wishlist  int
	orders    int
	stock     []int
	users     []UserStatus
	cartErr   error
	ordersErr error
	stockErr  error
	usersErr  error
}

var _ StatsGateway = fakeGateway{}

func (f fakeGateway) CartItemCount(context.Context, string) (int, error) {
	return f.cart, f.cartErr
}

func (f fakeGateway) WishlistCount(context.Context, string) (int, error) {
	return f.wishlist, nil
}

func (f fakeGateway) OrderCount(context.Context, string) (int, error) {
	return f.orders, f.ordersErr
}

func (f fakeGateway) VendorStockLevels(context.Context, string) ([]int, error) {
	return f.stock, f.stockErr
}

func (f fakeGateway) UserStatuses(context.Context, string) ([]UserStatus, error) {
	return f.users, f.usersErr
}

func testBase(role string) modulehandler.Base {
	return modulehandler.NewTestBase(module.Principal{
		SessionID: "sess-1",
		Token:     "token",
		Viewer:    module.Viewer{SignedIn: true, Name: "Ana Lima", Role: role},
	})
}

package wishlist

import (
	"context"
	"fmt"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
)

type fakeGateway struct {
	items   []Item
	cartErr error
	calls   []string
}

var _ WishlistGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListItems(context.Context, string) ([]Item, error) {
	return f.items, nil
}

func (f *fakeGateway) AddItem(_ context.Context, _ string, productID string) error {
	f.calls = append(f.calls, "add:"+productID)
	return nil
}

func (f *fakeGateway) RemoveItem(_ context.Context, _ string, productID string) error {
	f.calls = append(f.calls, "remove:"+productID)
	return nil
}

func (f *fakeGateway) Clear(context.Context, string) error {
	f.calls = append(f.calls, "clear")
	return nil
}

func (f *fakeGateway) AddToCart(_ context.Context, _ string, productID string, qty int) error {
	if f.cartErr != nil {
		return f.cartErr
	}
	f.calls = append(f.calls, fmt.Sprintf("cart:%s:%d", productID, qty))
	return nil
}

func testBase() modulehandler.Base {
	return modulehandler.NewTestBase(module.Principal{
		SessionID: "sess-1",
		Token:     "token",
		Viewer:    module.Viewer{SignedIn: true, Name: "Ana", Role: "buyer"},
	})
}

package cart

import (
	"context"
	"fmt"
	"sync"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
)

// fakeGateway implements CartGateway and records mutations.
type fakeGateway struct {
	mu         sync.Mutex
	items      []Item
	shopper    Shopper
	listErr    error
	shopperErr error
	calls      []string
}

var _ CartGateway = (*fakeGateway)(nil)

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) ListItems(context.Context, string) ([]Item, error) {
	return f.items, f.listErr
}

func (f *fakeGateway) AddItem(_ context.Context, _ string, productID string, qty int) error {
	f.record(fmt.Sprintf("add:%s:%d", productID, qty))
	return nil
}

func (f *fakeGateway) UpdateQuantity(_ context.Context, _ string, productID string, qty int) error {
	f.record(fmt.Sprintf("update:%s:%d", productID, qty))
	return nil
}

func (f *fakeGateway) RemoveItem(_ context.Context, _ string, productID string) error {
	f.record("remove:" + productID)
	return nil
}

func (f *fakeGateway) Clear(context.Context, string) error {
	f.record("clear")
	return nil
}

func (f *fakeGateway) Shopper(context.Context, string) (Shopper, error) {
	return f.shopper, f.shopperErr
}

func sampleItems() []Item {
	return []Item{
		{ProductID: "p1", Name: "Trail Shoes", Price: 89.5, Quantity: 2, Stock: 10},
		{ProductID: "p2", Name: "Wool Socks", Price: 12, Quantity: 1, Stock: 3},
	}
}

func testBase() modulehandler.Base {
	return modulehandler.NewTestBase(module.Principal{
		SessionID: "sess-1",
		Token:     "token",
		Viewer:    module.Viewer{SignedIn: true, Name: "Ana Lima", Email: "ana@example.com", Role: "buyer"},
	})
}

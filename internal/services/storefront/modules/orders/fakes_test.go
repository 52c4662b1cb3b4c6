package orders

import (
	"context"
	"time"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
)

type fakeGateway struct {
	orders []Order
	err    error
}

func (f fakeGateway) ListOrders(context.Context, string) ([]Order, error) {
	return f.orders, f.err
}

func day(d int) time.Time {
	return time.Date(2025, 5, d, 10, 0, 0, 0, time.UTC)
}

func sampleOrders() []Order {
	return []Order{
		{ID: "o1", Date: day(1), Status: "DELIVERED", Total: 40, Lines: []Line{{ProductID: "p1", Name: "Trail Shoes", Quantity: 1, Price: 40}}},
		{ID: "o3", Date: day(9), Status: "PENDING", Total: 12},
		{ID: "o2", Date: day(5), Status: "SHIPPED", Total: 99, ShippingAddress: "1 Main St"},
	}
}

func testBase() modulehandler.Base {
	return modulehandler.NewTestBase(module.Principal{
		SessionID: "sess-1",
		Token:     "token",
		Viewer:    module.Viewer{SignedIn: true, Name: "Ana", Role: "buyer"},
	})
}

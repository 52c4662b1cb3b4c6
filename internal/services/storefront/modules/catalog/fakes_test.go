package catalog

import (
	"context"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
)

// fakeGateway implements ProductGateway for tests with configurable return
// values and error injection.
type fakeGateway struct {
	products []Product
	err      error
}

var _ ProductGateway = fakeGateway{}

func (f fakeGateway) ListProducts(context.Context) ([]Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.products == nil {
		return sampleCatalog(), nil
	}
	return f.products, nil
}

func sampleCatalog() []Product {
	return []Product{
		{ID: "p1", Name: "Trail Shoes", Description: "Grippy soles", Category: "Footwear", Price: 89.5, Stock: 12, VendorName: "Peak Co"},
		{ID: "p2", Name: "Rain Jacket", Description: "Waterproof shell", Category: "Outerwear", Price: 120, Stock: 3},
		{ID: "p3", Name: "Wool Socks", Description: "Warm for trail days", Category: "footwear", Price: 12, Stock: 0},
	}
}

func testBase(role string) publichandler.Base {
	principal := module.Principal{}
	if role != "" {
		principal = module.Principal{Token: "token", Viewer: module.Viewer{SignedIn: true, Name: "Ana", Role: role}}
	}
	return publichandler.Base{Base: modulehandler.NewTestBase(principal)}
}

package public

import (
	"context"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
)

// fakeGateway implements CatalogGateway for tests with configurable return
// values and error injection.
type fakeGateway struct {
	products []Product
	err      error
}

var _ CatalogGateway = fakeGateway{}

func (f fakeGateway) ListProducts(context.Context) ([]Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func publicTestBase() publichandler.Base {
	return publichandler.Base{Base: modulehandler.NewTestBase(module.Principal{})}
}

func sampleProducts(n int) []Product {
	products := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		category := "Books"
		if i%2 == 1 {
			category = "electronics"
		}
		products = append(products, Product{
			ID:       string(rune('a' + i)),
			Name:     "Product " + string(rune('A'+i)),
			Category: category,
			Price:    float64(i + 1),
			Stock:    i,
		})
	}
	return products
}

package catalog

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// ProductSource lists the full catalog.
type ProductSource interface {
	ListAllProducts(context.Context) ([]backendapi.Product, error)
}

// NewAPIGateway builds the production catalog gateway.
func NewAPIGateway(source ProductSource) ProductGateway {
	if source == nil {
		return unavailableGateway{}
	}
	return apiGateway{source: source}
}

type apiGateway struct {
	source ProductSource
}

func (g apiGateway) ListProducts(ctx context.Context) ([]Product, error) {
	items, err := g.source.ListAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(items))
	for _, item := range items {
		products = append(products, Product{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Stock:       item.Stock,
			VendorName:  item.VendorName,
		})
	}
	return products, nil
}

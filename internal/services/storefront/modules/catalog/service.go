package catalog

import (
	"context"
	"slices"
	"strings"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

// Product is a catalog entry.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       float64
	Stock       int
	VendorName  string
}

// ProductGateway loads the public catalog.
type ProductGateway interface {
	ListProducts(context.Context) ([]Product, error)
}

// Filter narrows a product listing.
type Filter struct {
	Query    string
	Category string
}

// Listing is a filtered catalog page.
type Listing struct {
	Products   []Product
	Categories []string
}

type service struct {
	gateway ProductGateway
}

func newService(gateway ProductGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// listProducts applies filter to the catalog. Categories always cover the
// whole catalog so the filter can be widened again.
func (s service) listProducts(ctx context.Context, filter Filter) (Listing, error) {
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Products:   filterProducts(products, filter),
		Categories: categories(products),
	}, nil
}

func (s service) getProduct(ctx context.Context, productID string) (Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Product{}, apperrors.E(apperrors.KindNotFound, "product not found")
	}
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, product := range products {
		if product.ID == productID {
			return product, nil
		}
	}
	return Product{}, apperrors.E(apperrors.KindNotFound, "product not found")
}

// filterProducts matches the query against name or description and the
// category exactly, both case-insensitively.
func filterProducts(products []Product, filter Filter) []Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)
	result := make([]Product, 0, len(products))
	for _, product := range products {
		if category != "" && !strings.EqualFold(strings.TrimSpace(product.Category), category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(product.Name), query) &&
			!strings.Contains(strings.ToLower(product.Description), query) {
			continue
		}
		result = append(result, product)
	}
	return result
}

func categories(products []Product) []string {
	seen := map[string]struct{}{}
	result := []string{}
	for _, product := range products {
		category := strings.TrimSpace(product.Category)
		if category == "" {
			continue
		}
		key := strings.ToLower(category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, category)
	}
	slices.SortFunc(result, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return result
}

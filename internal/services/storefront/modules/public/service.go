package public

import (
	"context"
	"slices"
	"strings"
)

// maxFeaturedProducts caps the home page product grid.
const maxFeaturedProducts = 8

// Support contact details shown on the support page.
const (
	SupportEmail = "support@example.com"
	SupportPhone = "+1 (234) 567-890"
)

// Product is the catalog data the home page shows.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       float64
	Stock       int
}

// CatalogGateway loads the public product catalog.
type CatalogGateway interface {
	ListProducts(context.Context) ([]Product, error)
}

// HomeSnapshot is the featured slice of the catalog.
type HomeSnapshot struct {
	Featured   []Product
	Categories []string
}

type service struct {
	gateway CatalogGateway
}

func newService(gateway CatalogGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// loadHome returns up to maxFeaturedProducts products plus the category set.
// A catalog failure is returned alongside an empty snapshot so the caller can
// log it and still render the page.
func (s service) loadHome(ctx context.Context) (HomeSnapshot, error) {
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return HomeSnapshot{}, err
	}
	featured := products
	if len(featured) > maxFeaturedProducts {
		featured = featured[:maxFeaturedProducts]
	}
	return HomeSnapshot{Featured: featured, Categories: categories(products)}, nil
}

func categories(products []Product) []string {
	seen := map[string]struct{}{}
	result := []string{}
	for _, product := range products {
		category := strings.TrimSpace(product.Category)
		key := strings.ToLower(category)
		if category == "" {
			continue
		}
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

package catalog

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

func productIDs(products []Product) []string {
	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}
	return ids
}

func TestFilterProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter", filter: Filter{}, want: []string{"p1", "p2", "p3"}},
		{name: "query matches name", filter: Filter{Query: "JACKET"}, want: []string{"p2"}},
		{name: "query matches description", filter: Filter{Query: "trail"}, want: []string{"p1", "p3"}},
		{name: "category is exact and case-insensitive", filter: Filter{Category: "FOOTWEAR"}, want: []string{"p1", "p3"}},
		{name: "category does not match substrings", filter: Filter{Category: "foot"}, want: []string{}},
		{name: "query and category combine", filter: Filter{Query: "socks", Category: "footwear"}, want: []string{"p3"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := productIDs(filterProducts(sampleCatalog(), tc.filter))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("filterProducts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListProductsDerivesCategoriesFromWholeCatalog(t *testing.T) {
	t.Parallel()

	listing, err := newService(fakeGateway{}).listProducts(context.Background(), Filter{Category: "Outerwear"})
	if err != nil {
		t.Fatalf("listProducts() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Footwear", "Outerwear"}, listing.Categories); diff != "" {
		t.Fatalf("Categories mismatch (-want +got):\n%s", diff)
	}
	if len(listing.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(listing.Products))
	}
}

func TestGetProduct(t *testing.T) {
	t.Parallel()

	svc := newService(fakeGateway{})
	product, err := svc.getProduct(context.Background(), "p2")
	if err != nil {
		t.Fatalf("getProduct() error = %v", err)
	}
	if product.Name != "Rain Jacket" {
		t.Fatalf("Name = %q, want %q", product.Name, "Rain Jacket")
	}
	if _, err := svc.getProduct(context.Background(), "missing"); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("getProduct(missing) error = %v, want not found", err)
	}
}

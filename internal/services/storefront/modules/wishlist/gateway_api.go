package wishlist

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// BackendClient is the backend surface the wishlist uses.
type BackendClient interface {
	Wishlist(ctx context.Context, token string) ([]backendapi.WishlistItem, error)
	AddToWishlist(ctx context.Context, token string, productID string) error
	RemoveFromWishlist(ctx context.Context, token string, productID string) error
	ClearWishlist(ctx context.Context, token string) error
	AddToCart(ctx context.Context, token string, productID string, qty int) error
}

// NewAPIGateway builds the production wishlist gateway.
func NewAPIGateway(client BackendClient) WishlistGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client BackendClient
}

func (g apiGateway) ListItems(ctx context.Context, token string) ([]Item, error) {
	rows, err := g.client.Wishlist(ctx, token)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			ProductID:   row.ProductID,
			Name:        row.ProductName,
			ImageURL:    row.ProductImage,
			Description: row.Description,
			Category:    row.Category,
			Price:       row.Price,
			Stock:       row.Stock,
			AddedAt:     row.AddedAt,
		})
	}
	return items, nil
}

func (g apiGateway) AddItem(ctx context.Context, token string, productID string) error {
	return g.client.AddToWishlist(ctx, token, productID)
}

func (g apiGateway) RemoveItem(ctx context.Context, token string, productID string) error {
	return g.client.RemoveFromWishlist(ctx, token, productID)
}

func (g apiGateway) Clear(ctx context.Context, token string) error {
	return g.client.ClearWishlist(ctx, token)
}

func (g apiGateway) AddToCart(ctx context.Context, token string, productID string, qty int) error {
	return g.client.AddToCart(ctx, token, productID, qty)
}

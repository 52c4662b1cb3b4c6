package dashboard

import (
	"context"

	"github.com/louisbranch/storefront/internal/platform/money"
	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// BackendClient is the backend surface dashboards read from.
type BackendClient interface {
	Cart(ctx context.Context, token string) ([]backendapi.CartItem, error)
	Wishlist(ctx context.Context, token string) ([]backendapi.WishlistItem, error)
	Orders(ctx context.Context, token string) ([]backendapi.Order, error)
	VendorProductStats(ctx context.Context, token string) ([]backendapi.Product, error)
	Users(ctx context.Context, token string) ([]backendapi.User, error)
}

// NewAPIGateway builds the production stats gateway.
func NewAPIGateway(client BackendClient) StatsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client BackendClient
}

func (g apiGateway) CartItemCount(ctx context.Context, token string) (int, error) {
	items, err := g.client.Cart(ctx, token)
	if err != nil {
		return 0, err
	}
	return money.CartTotals(items).Count, nil
}

func (g apiGateway) WishlistCount(ctx context.Context, token string) (int, error) {
	items, err := g.client.Wishlist(ctx, token)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (g apiGateway) OrderCount(ctx context.Context, token string) (int, error) {
	orders, err := g.client.Orders(ctx, token)
	if err != nil {
		return 0, err
	}
	return len(orders), nil
}

func (g apiGateway) VendorStockLevels(ctx context.Context, token string) ([]int, error) {
	products, err := g.client.VendorProductStats(ctx, token)
	if err != nil {
		return nil, err
	}
	levels := make([]int, 0, len(products))
	for _, product := range products {
		levels = append(levels, product.Stock)
	}
	return levels, nil
}

func (g apiGateway) UserStatuses(ctx context.Context, token string) ([]UserStatus, error) {
	users, err := g.client.Users(ctx, token)
	if err != nil {
		return nil, err
	}
	statuses := make([]UserStatus, 0, len(users))
	for _, user := range users {
		statuses = append(statuses, UserStatus{Role: user.Role, Active: user.IsActive})
	}
	return statuses, nil
}

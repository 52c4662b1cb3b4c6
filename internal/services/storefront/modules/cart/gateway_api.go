package cart

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// BackendClient is the backend surface the cart uses.
type BackendClient interface {
	Cart(ctx context.Context, token string) ([]backendapi.CartItem, error)
	AddToCart(ctx context.Context, token string, productID string, qty int) error
	UpdateCartItem(ctx context.Context, token string, productID string, qty int) error
	RemoveCartItem(ctx context.Context, token string, productID string) error
	ClearCart(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (backendapi.User, error)
}

// NewAPIGateway builds the production cart gateway.
func NewAPIGateway(client BackendClient) CartGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client BackendClient
}

func (g apiGateway) ListItems(ctx context.Context, token string) ([]Item, error) {
	rows, err := g.client.Cart(ctx, token)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			ProductID: row.ProductID,
			Name:      row.ProductName,
			ImageURL:  row.ProductImage,
			Price:     row.Price,
			Quantity:  row.Quantity,
			Stock:     row.Stock,
		})
	}
	return items, nil
}

func (g apiGateway) AddItem(ctx context.Context, token string, productID string, qty int) error {
	return g.client.AddToCart(ctx, token, productID, qty)
}

func (g apiGateway) UpdateQuantity(ctx context.Context, token string, productID string, qty int) error {
	return g.client.UpdateCartItem(ctx, token, productID, qty)
}

func (g apiGateway) RemoveItem(ctx context.Context, token string, productID string) error {
	return g.client.RemoveCartItem(ctx, token, productID)
}

func (g apiGateway) Clear(ctx context.Context, token string) error {
	return g.client.ClearCart(ctx, token)
}

func (g apiGateway) Shopper(ctx context.Context, token string) (Shopper, error) {
	user, err := g.client.Profile(ctx, token)
	if err != nil {
		return Shopper{}, err
	}
	shopper := Shopper{Name: user.Name, Email: user.Email}
	if user.Buyer != nil {
		shopper.ShippingAddress = user.Buyer.ShippingAddress
	}
	return shopper, nil
}

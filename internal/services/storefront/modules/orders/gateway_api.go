package orders

import (
	"context"
	"strings"

	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// BackendClient lists buyer orders.
type BackendClient interface {
	Orders(ctx context.Context, token string) ([]backendapi.Order, error)
}

// NewAPIGateway builds the production orders gateway.
func NewAPIGateway(client BackendClient) OrderGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client BackendClient
}

func (g apiGateway) ListOrders(ctx context.Context, token string) ([]Order, error) {
	rows, err := g.client.Orders(ctx, token)
	if err != nil {
		return nil, err
	}
	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		lines := make([]Line, 0, len(row.Items))
		for _, item := range row.Items {
			lines = append(lines, Line{
				ProductID: item.ProductID,
				Name:      item.ProductName,
				ImageURL:  item.ProductImage,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}
		orders = append(orders, Order{
			ID:              row.ID,
			Date:            row.OrderDate,
			Status:          strings.ToUpper(strings.TrimSpace(row.Status)),
			Total:           row.TotalAmount,
			Lines:           lines,
			ShippingAddress: row.ShippingAddress,
			PaymentMethod:   row.PaymentMethod,
		})
	}
	return orders, nil
}

package backendapi

import (
	"context"
	"net/http"
)

// Orders returns the buyer's orders in backend order.
func (c *Client) Orders(ctx context.Context, token string) ([]Order, error) {
	resp, err := c.do(ctx, request{operation: "buyer.orders", method: http.MethodGet, path: "/api/buyer/orders", token: token})
	if err != nil {
		return nil, err
	}
	raw := listItems(resp.body, "orders", "data", "content")
	orders := make([]Order, 0, len(raw))
	for _, item := range raw {
		orders = append(orders, normalizeOrder(item))
	}
	return orders, nil
}

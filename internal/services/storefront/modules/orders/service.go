package orders

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

// StatusAll disables the status filter.
const StatusAll = "ALL"

// Line is one purchased product.
type Line struct {
	ProductID string
	Name      string
	ImageURL  string
	Quantity  int
	Price     float64
}

// Order is one buyer order.
type Order struct {
	ID              string
	Date            time.Time
	Status          string
	Total           float64
	Lines           []Line
	ShippingAddress string
	PaymentMethod   string
}

// OrderGateway lists the buyer's orders.
type OrderGateway interface {
	ListOrders(ctx context.Context, token string) ([]Order, error)
}

type service struct {
	gateway OrderGateway
}

func newService(gateway OrderGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// Statuses returns the filter tabs, StatusAll first.
func Statuses() []string {
	return append([]string{StatusAll}, backendapi.OrderStatuses()...)
}

// NormalizeStatus upper-cases a known status. Anything else is StatusAll.
func NormalizeStatus(raw string) string {
	status := strings.ToUpper(strings.TrimSpace(raw))
	if slices.Contains(backendapi.OrderStatuses(), status) {
		return status
	}
	return StatusAll
}

// list returns orders matching status, newest first.
func (s service) list(ctx context.Context, token, status string) ([]Order, error) {
	orders, err := s.gateway.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	status = NormalizeStatus(status)
	filtered := make([]Order, 0, len(orders))
	for _, order := range orders {
		if status == StatusAll || strings.EqualFold(order.Status, status) {
			filtered = append(filtered, order)
		}
	}
	slices.SortStableFunc(filtered, func(a, b Order) int {
		return cmp.Compare(b.Date.UnixNano(), a.Date.UnixNano())
	})
	return filtered, nil
}

func (s service) get(ctx context.Context, token, orderID string) (Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return Order{}, apperrors.E(apperrors.KindNotFound, "order id is required")
	}
	orders, err := s.gateway.ListOrders(ctx, token)
	if err != nil {
		return Order{}, err
	}
	for _, order := range orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return Order{}, apperrors.E(apperrors.KindNotFound, "order not found")
}

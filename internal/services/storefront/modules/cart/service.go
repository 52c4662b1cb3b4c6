package cart

import (
	"context"
	"strconv"
	"strings"

	"github.com/louisbranch/storefront/internal/platform/money"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

// Item is one cart line.
type Item struct {
	ProductID string
	Name      string
	ImageURL  string
	Price     float64
	Quantity  int
	Stock     int
}

// LinePrice implements money.LineItem.
func (i Item) LinePrice() float64 { return i.Price }

// LineQuantity implements money.LineItem.
func (i Item) LineQuantity() int { return i.Quantity }

// Shopper is the buyer identity shown on checkout.
type Shopper struct {
	Name            string
	Email           string
	ShippingAddress string
}

// CartGateway reads and mutates the buyer's cart.
type CartGateway interface {
	ListItems(ctx context.Context, token string) ([]Item, error)
	AddItem(ctx context.Context, token string, productID string, qty int) error
	UpdateQuantity(ctx context.Context, token string, productID string, qty int) error
	RemoveItem(ctx context.Context, token string, productID string) error
	Clear(ctx context.Context, token string) error
	Shopper(ctx context.Context, token string) (Shopper, error)
}

// Summary is the cart with its totals.
type Summary struct {
	Items  []Item
	Totals money.Totals
}

type service struct {
	gateway CartGateway
}

func newService(gateway CartGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) summary(ctx context.Context, token string) (Summary, error) {
	items, err := s.gateway.ListItems(ctx, token)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Items: items, Totals: money.CartTotals(items)}, nil
}

// parseQuantity reads a positive quantity. A blank value yields fallback;
// a fallback of zero makes the value required.
func parseQuantity(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if fallback > 0 {
			return fallback, nil
		}
		return 0, apperrors.EK(apperrors.KindInvalidInput, "shop.cart.invalid_quantity", "quantity is required")
	}
	qty, err := strconv.Atoi(raw)
	if err != nil || qty < 1 {
		return 0, apperrors.EK(apperrors.KindInvalidInput, "shop.cart.invalid_quantity", "quantity must be at least 1")
	}
	return qty, nil
}

func requireProduct(productID string) (string, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return "", apperrors.E(apperrors.KindNotFound, "product id is required")
	}
	return productID, nil
}

func (s service) add(ctx context.Context, token, productID, rawQty string) error {
	productID, err := requireProduct(productID)
	if err != nil {
		return err
	}
	qty, err := parseQuantity(rawQty, 1)
	if err != nil {
		return err
	}
	return s.gateway.AddItem(ctx, token, productID, qty)
}

func (s service) updateQuantity(ctx context.Context, token, productID, rawQty string) error {
	productID, err := requireProduct(productID)
	if err != nil {
		return err
	}
	qty, err := parseQuantity(rawQty, 0)
	if err != nil {
		return err
	}
	return s.gateway.UpdateQuantity(ctx, token, productID, qty)
}

func (s service) remove(ctx context.Context, token, productID string) error {
	productID, err := requireProduct(productID)
	if err != nil {
		return err
	}
	return s.gateway.RemoveItem(ctx, token, productID)
}

func (s service) clear(ctx context.Context, token string) error {
	return s.gateway.Clear(ctx, token)
}

// Checkout is the read-only order preview.
type Checkout struct {
	Summary
	Shopper Shopper
}

// checkout builds the order preview. An empty cart is a conflict. Profile
// lookup failures other than an expired session fall back to fallback.
func (s service) checkout(ctx context.Context, token string, fallback Shopper) (Checkout, error) {
	summary, err := s.summary(ctx, token)
	if err != nil {
		return Checkout{}, err
	}
	if len(summary.Items) == 0 {
		return Checkout{}, apperrors.EK(apperrors.KindConflict, "shop.checkout.empty", "cart is empty")
	}
	shopper, err := s.gateway.Shopper(ctx, token)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnauthorized {
			return Checkout{}, err
		}
		shopper = fallback
	}
	if strings.TrimSpace(shopper.Name) == "" {
		shopper.Name = fallback.Name
	}
	if strings.TrimSpace(shopper.Email) == "" {
		shopper.Email = fallback.Email
	}
	return Checkout{Summary: summary, Shopper: shopper}, nil
}

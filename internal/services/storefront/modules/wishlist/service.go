package wishlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

// Item is one saved product.
type Item struct {
	ProductID   string
	Name        string
	ImageURL    string
	Description string
	Category    string
	Price       float64
	Stock       int
	AddedAt     time.Time
}

// WishlistGateway reads and mutates the wishlist. AddToCart is used when a
// saved product moves to the cart.
type WishlistGateway interface {
	ListItems(ctx context.Context, token string) ([]Item, error)
	AddItem(ctx context.Context, token string, productID string) error
	RemoveItem(ctx context.Context, token string, productID string) error
	Clear(ctx context.Context, token string) error
	AddToCart(ctx context.Context, token string, productID string, qty int) error
}

type service struct {
	gateway WishlistGateway
}

func newService(gateway WishlistGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func requireProduct(productID string) (string, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return "", apperrors.E(apperrors.KindNotFound, "product id is required")
	}
	return productID, nil
}

func (s service) list(ctx context.Context, token string) ([]Item, error) {
	return s.gateway.ListItems(ctx, token)
}

func (s service) add(ctx context.Context, token, productID string) error {
	productID, err := requireProduct(productID)
	if err != nil {
		return err
	}
	return s.gateway.AddItem(ctx, token, productID)
}

func (s service) remove(ctx context.Context, token, productID string) error {
	productID, err := requireProduct(productID)
	if err != nil {
		return err
	}
	return s.gateway.RemoveItem(ctx, token, productID)
}

// moveToCart adds one unit to the cart, then drops the wishlist entry. The
// entry stays when the cart add fails.
func (s service) moveToCart(ctx context.Context, token, productID string) error {
	productID, err := requireProduct(productID)
	if err != nil {
		return err
	}
	if err := s.gateway.AddToCart(ctx, token, productID, 1); err != nil {
		return err
	}
	if err := s.gateway.RemoveItem(ctx, token, productID); err != nil {
		return fmt.Errorf("remove moved item: %w", err)
	}
	return nil
}

func (s service) clear(ctx context.Context, token string) error {
	return s.gateway.Clear(ctx, token)
}

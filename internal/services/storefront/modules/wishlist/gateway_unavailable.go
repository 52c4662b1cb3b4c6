package wishlist

import (
	"context"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

type unavailableGateway struct{}

func errUnavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, "errors.backend_unavailable", "wishlist service is not configured")
}

func (unavailableGateway) ListItems(context.Context, string) ([]Item, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) AddItem(context.Context, string, string) error {
	return errUnavailable()
}

func (unavailableGateway) RemoveItem(context.Context, string, string) error {
	return errUnavailable()
}

func (unavailableGateway) Clear(context.Context, string) error {
	return errUnavailable()
}

func (unavailableGateway) AddToCart(context.Context, string, string, int) error {
	return errUnavailable()
}

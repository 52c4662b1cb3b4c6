package dashboard

import (
	"context"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) CartItemCount(context.Context, string) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "dashboard service is not configured")
}

func (unavailableGateway) WishlistCount(context.Context, string) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "dashboard service is not configured")
}

func (unavailableGateway) OrderCount(context.Context, string) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "dashboard service is not configured")
}

func (unavailableGateway) VendorStockLevels(context.Context, string) ([]int, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "dashboard service is not configured")
}

func (unavailableGateway) UserStatuses(context.Context, string) ([]UserStatus, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "dashboard service is not configured")
}

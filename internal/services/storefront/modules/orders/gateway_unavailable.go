package orders

import (
	"context"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListOrders(context.Context, string) ([]Order, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "errors.backend_unavailable", "orders service is not configured")
}

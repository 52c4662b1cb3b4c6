package public

import (
	"context"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListProducts(context.Context) ([]Product, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "catalog service is not configured")
}

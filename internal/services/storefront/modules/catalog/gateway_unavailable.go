package catalog

import (
	"context"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListProducts(context.Context) ([]Product, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "errors.backend_unavailable", "catalog service is not configured")
}

package profile

import (
	"context"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Profile(context.Context, string) (Profile, error) {
	return Profile{}, apperrors.EK(apperrors.KindUnavailable, "errors.backend_unavailable", "profile service is not configured")
}

func (unavailableGateway) UpdateProfile(context.Context, string, Update) error {
	return apperrors.EK(apperrors.KindUnavailable, "errors.backend_unavailable", "profile service is not configured")
}

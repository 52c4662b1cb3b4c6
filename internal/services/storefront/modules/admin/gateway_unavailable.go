package admin

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

type unavailableGateway struct{}

func errUnavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, "errors.backend_unavailable", "admin service is not configured")
}

func (unavailableGateway) ListUsers(context.Context, string) ([]User, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) SetActive(context.Context, string, string, bool) error {
	return errUnavailable()
}

func (unavailableGateway) DeleteUser(context.Context, string, string) error {
	return errUnavailable()
}

func (unavailableGateway) ChangeRole(context.Context, string, string, identity.Role) error {
	return errUnavailable()
}

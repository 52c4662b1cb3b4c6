package publicauth

import (
	"context"
	"time"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
)

type unavailableGateway struct{}

func (unavailableGateway) Login(context.Context, string, string) (LoginResult, error) {
	return LoginResult{}, apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) Register(context.Context, Registration) error {
	return apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) ForgotPassword(context.Context, string) error {
	return apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) ResetPassword(context.Context, string, string) error {
	return apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) Profile(context.Context, string) (UserSnapshot, error) {
	return UserSnapshot{}, apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

type unavailableSessions struct{}

func (unavailableSessions) Create(context.Context, string, module.Viewer, time.Time) (storage.Session, error) {
	return storage.Session{}, apperrors.E(apperrors.KindUnavailable, "session store is not configured")
}

func (unavailableSessions) End(context.Context, string) error {
	return nil
}

package publicauth

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// AuthClient is the backend surface used for account operations.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (backendapi.LoginResult, error)
	Register(ctx context.Context, input backendapi.RegisterInput) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, token string) (backendapi.User, error)
}

// NewAPIGateway builds the production auth gateway.
func NewAPIGateway(client AuthClient) AuthGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client AuthClient
}

func (g apiGateway) Login(ctx context.Context, email, password string) (LoginResult, error) {
	result, err := g.client.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}
	login := LoginResult{Token: result.Token, RoleText: result.RoleText}
	if result.User != nil {
		user := snapshotFromUser(*result.User)
		login.User = &user
	}
	return login, nil
}

func (g apiGateway) Register(ctx context.Context, registration Registration) error {
	return g.client.Register(ctx, backendapi.RegisterInput{
		Name:     registration.Name,
		Email:    registration.Email,
		Password: registration.Password,
		Role:     registration.Role.Backend(),
	})
}

func (g apiGateway) ForgotPassword(ctx context.Context, email string) error {
	return g.client.ForgotPassword(ctx, email)
}

func (g apiGateway) ResetPassword(ctx context.Context, token, newPassword string) error {
	return g.client.ResetPassword(ctx, token, newPassword)
}

func (g apiGateway) Profile(ctx context.Context, token string) (UserSnapshot, error) {
	user, err := g.client.Profile(ctx, token)
	if err != nil {
		return UserSnapshot{}, err
	}
	return snapshotFromUser(user), nil
}

func snapshotFromUser(user backendapi.User) UserSnapshot {
	return UserSnapshot{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		ImageURL: user.ImageURL,
	}
}

package admin

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
)

// BackendClient is the backend surface user management uses.
type BackendClient interface {
	Users(ctx context.Context, token string) ([]backendapi.User, error)
	SetUserActive(ctx context.Context, token string, userID string, active bool) error
	DeleteUser(ctx context.Context, token string, userID string) error
	ChangeUserRole(ctx context.Context, token string, userID string, role string) error
}

// NewAPIGateway builds the production admin gateway.
func NewAPIGateway(client BackendClient) UserGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client BackendClient
}

func (g apiGateway) ListUsers(ctx context.Context, token string) ([]User, error) {
	rows, err := g.client.Users(ctx, token)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, User{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Role:      identity.ParseRole(row.Role),
			Active:    row.IsActive,
			CreatedAt: row.CreatedAt,
		})
	}
	return users, nil
}

func (g apiGateway) SetActive(ctx context.Context, token string, userID string, active bool) error {
	return g.client.SetUserActive(ctx, token, userID, active)
}

func (g apiGateway) DeleteUser(ctx context.Context, token string, userID string) error {
	return g.client.DeleteUser(ctx, token, userID)
}

func (g apiGateway) ChangeRole(ctx context.Context, token string, userID string, role identity.Role) error {
	return g.client.ChangeUserRole(ctx, token, userID, role.Backend())
}

package admin

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

// RoleAll disables the role filter.
const RoleAll = "all"

// User is one managed account.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      identity.Role
	Active    bool
	CreatedAt time.Time
}

// Filter narrows the user list.
type Filter struct {
	Query string
	Role  string
}

// UserGateway manages accounts on the backend.
type UserGateway interface {
	ListUsers(ctx context.Context, token string) ([]User, error)
	SetActive(ctx context.Context, token string, userID string, active bool) error
	DeleteUser(ctx context.Context, token string, userID string) error
	ChangeRole(ctx context.Context, token string, userID string, role identity.Role) error
}

// RoleFilters lists the role filter values, RoleAll first.
func RoleFilters() []string {
	filters := []string{RoleAll}
	for _, role := range identity.Roles() {
		filters = append(filters, role.String())
	}
	return filters
}

// NormalizeFilter trims the query and maps unknown roles to RoleAll.
func NormalizeFilter(query, role string) Filter {
	filter := Filter{Query: strings.TrimSpace(query), Role: RoleAll}
	if identity.ValidRole(role) {
		filter.Role = identity.ParseRole(role).String()
	}
	return filter
}

func (f Filter) matches(user User) bool {
	if f.Role != RoleAll && user.Role.String() != f.Role {
		return false
	}
	if f.Query == "" {
		return true
	}
	query := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(user.Name), query) ||
		strings.Contains(strings.ToLower(user.Email), query)
}

type service struct {
	gateway UserGateway
}

func newService(gateway UserGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listUsers(ctx context.Context, token string, filter Filter) ([]User, error) {
	users, err := s.gateway.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	matched := make([]User, 0, len(users))
	for _, user := range users {
		if filter.matches(user) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

func requireUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", apperrors.E(apperrors.KindNotFound, "user id is required")
	}
	return userID, nil
}

// guardSelf refuses destructive actions on the signed-in admin's own account.
func guardSelf(actorID, userID string) error {
	if actorID != "" && actorID == userID {
		return apperrors.EK(apperrors.KindConflict, "admin.users.self_action", "cannot change own account")
	}
	return nil
}

// toggleActive flips current, the active state the form was rendered with.
func (s service) toggleActive(ctx context.Context, token, actorID, userID, current string) (bool, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return false, err
	}
	if err := guardSelf(actorID, userID); err != nil {
		return false, err
	}
	active, err := strconv.ParseBool(strings.TrimSpace(current))
	if err != nil {
		return false, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_form", "active must be true or false")
	}
	if err := s.gateway.SetActive(ctx, token, userID, !active); err != nil {
		return false, err
	}
	return !active, nil
}

func (s service) deleteUser(ctx context.Context, token, actorID, userID string) error {
	userID, err := requireUserID(userID)
	if err != nil {
		return err
	}
	if err := guardSelf(actorID, userID); err != nil {
		return err
	}
	return s.gateway.DeleteUser(ctx, token, userID)
}

func (s service) changeRole(ctx context.Context, token, actorID, userID, role string) error {
	userID, err := requireUserID(userID)
	if err != nil {
		return err
	}
	if !identity.ValidRole(role) {
		return apperrors.EK(apperrors.KindInvalidInput, "admin.users.invalid_role", "invalid role")
	}
	if err := guardSelf(actorID, userID); err != nil {
		return err
	}
	return s.gateway.ChangeRole(ctx, token, userID, identity.ParseRole(role))
}

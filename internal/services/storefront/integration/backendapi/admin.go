package backendapi

import (
	"context"
	"net/http"
)

// Users returns every account for the admin console.
func (c *Client) Users(ctx context.Context, token string) ([]User, error) {
	resp, err := c.do(ctx, request{operation: "admin.users", method: http.MethodGet, path: "/api/admin/users", token: token})
	if err != nil {
		return nil, err
	}
	raw := listItems(resp.body, "users", "data", "content")
	users := make([]User, 0, len(raw))
	for _, item := range raw {
		users = append(users, normalizeUser(item))
	}
	return users, nil
}

// SetUserActive activates or deactivates an account.
func (c *Client) SetUserActive(ctx context.Context, token string, userID string, active bool) error {
	body, err := jsonBody(map[string]bool{"isActive": active})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{operation: "admin.user_toggle", method: http.MethodPut, path: "/api/admin/users/" + pathID(userID) + "/toggle-status", token: token, body: body})
	return err
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token string, userID string) error {
	_, err := c.do(ctx, request{operation: "admin.user_delete", method: http.MethodDelete, path: "/api/users/" + pathID(userID), token: token})
	return err
}

// ChangeUserRole assigns role, given in backend spelling, to an account.
func (c *Client) ChangeUserRole(ctx context.Context, token string, userID string, role string) error {
	body, err := jsonBody(map[string]string{"role": role})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{operation: "admin.user_role", method: http.MethodPut, path: "/api/users/" + pathID(userID) + "/role", token: token, body: body})
	return err
}

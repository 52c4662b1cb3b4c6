package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/tidwall/gjson"
)

// Login exchanges credentials for a backend token. The backend may answer
// with a raw JWT, a JSON object carrying token and user, or plain text that
// only names the role.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := jsonBody(map[string]string{"email": email, "password": password})
	if err != nil {
		return LoginResult{}, err
	}
	resp, err := c.do(ctx, request{operation: "auth.login", method: http.MethodPost, path: "/api/auth/login", body: body})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnauthorized {
			return LoginResult{}, apperrors.Error{Kind: apperrors.KindInvalidInput, Key: "auth.error.invalid_credentials", Cause: err}
		}
		return LoginResult{}, err
	}
	return parseLogin(resp.body), nil
}

func parseLogin(body []byte) LoginResult {
	text := strings.TrimSpace(string(body))
	if gjson.Valid(text) {
		parsed := gjson.Parse(text)
		if parsed.Type == gjson.String {
			text = strings.TrimSpace(parsed.Str)
		} else if parsed.IsObject() {
			result := LoginResult{Token: firstString(parsed, "token", "accessToken", "access_token", "jwt")}
			if user := first(parsed, "user", "User"); user.IsObject() {
				normalized := normalizeUser(user)
				result.User = &normalized
			} else if role := firstString(parsed, "role", "Role", "roles.0"); role != "" {
				result.RoleText = role
			}
			return result
		}
	}
	if strings.HasPrefix(text, "eyJ") {
		return LoginResult{Token: text}
	}
	return LoginResult{RoleText: text}
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	body, err := jsonBody(input)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{operation: "auth.register", method: http.MethodPost, path: "/api/auth/register", body: body})
	return err
}

// ForgotPassword asks the backend to email a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body, err := jsonBody(map[string]string{"email": email})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{operation: "auth.forgot_password", method: http.MethodPost, path: "/api/auth/forgot-password", body: body})
	return err
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body, err := jsonBody(map[string]string{"token": token, "newPassword": newPassword})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{operation: "auth.reset_password", method: http.MethodPost, path: "/api/auth/reset-password", body: body})
	return err
}

// Profile returns the signed-in user.
func (c *Client) Profile(ctx context.Context, token string) (User, error) {
	resp, err := c.do(ctx, request{operation: "auth.profile", method: http.MethodGet, path: "/api/auth/profile", token: token})
	if err != nil {
		return User{}, err
	}
	obj, ok := parseObject(resp.body, "user", "data")
	if !ok {
		return User{}, apperrors.Wrap(apperrors.KindUnavailable, "errors.backend_unavailable", fmt.Errorf("auth.profile: unexpected response"))
	}
	return normalizeUser(obj), nil
}

// UpdateProfile sends the changed profile fields as multipart form data.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) error {
	if update.Empty() {
		return apperrors.EK(apperrors.KindInvalidInput, "account.profile.no_changes", "no changes to update")
	}
	body, contentType, err := profileMultipart(update)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		operation:   "auth.profile_update",
		method:      http.MethodPut,
		path:        "/api/auth/profile/update",
		token:       token,
		body:        body,
		contentType: contentType,
	})
	return err
}

func profileMultipart(update ProfileUpdate) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if update.Name != nil {
		if err := writer.WriteField("name", *update.Name); err != nil {
			return nil, "", fmt.Errorf("write name: %w", err)
		}
	}
	switch {
	case update.Image != nil:
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="imageUrl"; filename=%q`, update.Image.Filename))
		contentType := update.Image.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(update.Image.Data); err != nil {
			return nil, "", fmt.Errorf("write image: %w", err)
		}
	case update.ImageURL != nil:
		if err := writer.WriteField("imageUrl", *update.ImageURL); err != nil {
			return nil, "", fmt.Errorf("write image url: %w", err)
		}
	}
	if update.Buyer != nil && !update.Buyer.Empty() {
		raw, err := json.Marshal(update.Buyer)
		if err != nil {
			return nil, "", fmt.Errorf("encode buyer profile: %w", err)
		}
		if err := writer.WriteField("buyerProfile", string(raw)); err != nil {
			return nil, "", fmt.Errorf("write buyer profile: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

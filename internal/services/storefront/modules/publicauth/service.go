package publicauth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// UserSnapshot is the account data the backend returns on sign-in.
type UserSnapshot struct {
	ID       string
	Name     string
	Email    string
	Role     string
	ImageURL string
}

// LoginResult is the backend answer to a sign-in. Token is empty when the
// backend only confirmed the credentials in plain text.
type LoginResult struct {
	Token    string
	User     *UserSnapshot
	RoleText string
}

// Registration is a validated sign-up request.
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     identity.Role
}

// AuthGateway performs account operations against the backend.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, registration Registration) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, token string) (UserSnapshot, error)
}

// SessionIssuer creates and ends web sessions.
type SessionIssuer interface {
	Create(ctx context.Context, token string, viewer module.Viewer, tokenExpiry time.Time) (storage.Session, error)
	End(ctx context.Context, id string) error
}

// TokenInspector reads claims from backend tokens.
type TokenInspector interface {
	Inspect(token string) (identity.Claims, error)
}

// RegisterForm is the raw sign-up form.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// ResetForm is the raw password reset form.
type ResetForm struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

type service struct {
	gateway  AuthGateway
	sessions SessionIssuer
	tokens   TokenInspector
}

func newService(gateway AuthGateway, sessions SessionIssuer, tokens TokenInspector) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if sessions == nil {
		sessions = unavailableSessions{}
	}
	if tokens == nil {
		tokens = identity.NewTokenInspector("")
	}
	return service{gateway: gateway, sessions: sessions, tokens: tokens}
}

func invalid(key, message string) error {
	return apperrors.EK(apperrors.KindInvalidInput, key, message)
}

// login signs in and opens a session. The returned viewer carries the
// resolved role for the dashboard redirect.
func (s service) login(ctx context.Context, email, password string) (storage.Session, module.Viewer, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return storage.Session{}, module.Viewer{}, invalid("auth.error.credentials_required", "email and password are required")
	}
	result, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return storage.Session{}, module.Viewer{}, err
	}

	viewer := module.Viewer{SignedIn: true, Email: email}
	var claims identity.Claims
	if identity.LooksLikeJWT(result.Token) {
		claims, err = s.tokens.Inspect(result.Token)
		if err != nil {
			return storage.Session{}, module.Viewer{}, apperrors.Wrap(apperrors.KindInvalidInput, "auth.error.invalid_token", err)
		}
		viewer.UserID = claims.Subject
		viewer.Name = claims.Name
		if claims.Email != "" {
			viewer.Email = claims.Email
		}
	}
	if result.User != nil {
		mergeUser(&viewer, *result.User)
	}
	viewer.Role = resolveRole(claims, result).String()

	if result.Token != "" {
		// Best effort: the profile only enriches the session snapshot.
		if profile, err := s.gateway.Profile(ctx, result.Token); err == nil {
			mergeUser(&viewer, profile)
		}
	}
	if strings.TrimSpace(viewer.Name) == "" {
		viewer.Name = nameFromEmail(viewer.Email)
	}

	session, err := s.sessions.Create(ctx, result.Token, viewer, claims.ExpiresAt)
	if err != nil {
		return storage.Session{}, module.Viewer{}, err
	}
	return session, viewer, nil
}

// resolveRole prefers token claims, then the returned user, then a role
// marker in a plain-text answer. Everyone else is a buyer.
func resolveRole(claims identity.Claims, result LoginResult) identity.Role {
	if claims.HasRole {
		return claims.Role
	}
	if result.User != nil && identity.ValidRole(result.User.Role) {
		return identity.ParseRole(result.User.Role)
	}
	if role, ok := identity.RoleFromText(result.RoleText); ok {
		return role
	}
	return identity.RoleBuyer
}

func mergeUser(viewer *module.Viewer, user UserSnapshot) {
	if id := strings.TrimSpace(user.ID); id != "" {
		viewer.UserID = id
	}
	if name := strings.TrimSpace(user.Name); name != "" {
		viewer.Name = name
	}
	if email := strings.TrimSpace(user.Email); email != "" {
		viewer.Email = email
	}
	if image := strings.TrimSpace(user.ImageURL); image != "" {
		viewer.ImageURL = image
	}
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}

func (s service) logout(ctx context.Context, sessionID string) error {
	return s.sessions.End(ctx, sessionID)
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("auth.error.email_required", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("auth.error.email_invalid", "email is invalid")
	}
	return nil
}

func validatePasswords(password, confirm string) error {
	if len([]rune(password)) < MinPasswordLength {
		return invalid("auth.error.password_too_short", "password is too short")
	}
	if password != confirm {
		return invalid("auth.error.password_mismatch", "passwords do not match")
	}
	return nil
}

func validateRegistration(form RegisterForm) (Registration, error) {
	registration := Registration{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	}
	if registration.Name == "" {
		return Registration{}, invalid("auth.error.name_required", "name is required")
	}
	if err := validateEmail(registration.Email); err != nil {
		return Registration{}, err
	}
	if err := validatePasswords(form.Password, form.ConfirmPassword); err != nil {
		return Registration{}, err
	}
	if !identity.ValidRole(form.Role) {
		return Registration{}, invalid("auth.error.invalid_role", "role is invalid")
	}
	registration.Role = identity.ParseRole(form.Role)
	return registration, nil
}

func (s service) register(ctx context.Context, form RegisterForm) error {
	registration, err := validateRegistration(form)
	if err != nil {
		return err
	}
	return s.gateway.Register(ctx, registration)
}

// forgotPassword requests a reset link. Only an unreachable backend is
// reported, so the answer never reveals whether the email exists.
func (s service) forgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	err := s.gateway.ForgotPassword(ctx, email)
	if err != nil && apperrors.KindOf(err) == apperrors.KindUnavailable {
		return err
	}
	return nil
}

func (s service) resetPassword(ctx context.Context, form ResetForm) error {
	token := strings.TrimSpace(form.Token)
	if token == "" {
		return invalid("auth.error.reset_token_missing", "reset token is required")
	}
	if err := validatePasswords(form.NewPassword, form.ConfirmPassword); err != nil {
		return err
	}
	return s.gateway.ResetPassword(ctx, token, form.NewPassword)
}

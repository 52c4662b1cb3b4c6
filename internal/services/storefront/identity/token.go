package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

// Claims is what the storefront reads from a backend token.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Role      Role
	HasRole   bool
	ExpiresAt time.Time
}

// TokenInspector decodes backend JWTs. With a shared HMAC secret the
// signature is verified; without one the token is decoded unverified since
// the backend remains the authority on every call.
type TokenInspector struct {
	secret []byte
	now    func() time.Time
}

// NewTokenInspector builds an inspector. An empty secret disables
// signature verification.
func NewTokenInspector(secret string) TokenInspector {
	inspector := TokenInspector{now: time.Now}
	if secret = strings.TrimSpace(secret); secret != "" {
		inspector.secret = []byte(secret)
	}
	return inspector
}

// Verifies reports whether signatures are checked.
func (i TokenInspector) Verifies() bool {
	return len(i.secret) > 0
}

// LooksLikeJWT reports whether raw has the shape of a compact JWT.
func LooksLikeJWT(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.HasPrefix(raw, "eyJ") && strings.Count(raw, ".") == 2
}

// Inspect decodes token into Claims. Expired tokens are rejected.
func (i TokenInspector) Inspect(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.EK(apperrors.KindUnauthorized, "errors.session_expired", "token is required")
	}
	now := time.Now
	if i.now != nil {
		now = i.now
	}

	mapClaims := jwt.MapClaims{}
	if i.Verifies() {
		parser := jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
			jwt.WithTimeFunc(now),
		)
		if _, err := parser.ParseWithClaims(token, mapClaims, func(*jwt.Token) (any, error) {
			return i.secret, nil
		}); err != nil {
			return Claims{}, apperrors.Wrap(apperrors.KindUnauthorized, "errors.session_expired", fmt.Errorf("verify token: %w", err))
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
			return Claims{}, apperrors.Wrap(apperrors.KindUnauthorized, "errors.session_expired", fmt.Errorf("decode token: %w", err))
		}
	}

	claims := Claims{}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
		if !now().Before(exp.Time) {
			return Claims{}, apperrors.Wrap(apperrors.KindUnauthorized, "errors.session_expired", errors.New("token expired"))
		}
	}
	claims.Subject, _ = mapClaims.GetSubject()
	claims.Email = stringClaim(mapClaims, "email")
	if claims.Email == "" && strings.Contains(claims.Subject, "@") {
		claims.Email = claims.Subject
	}
	claims.Name = stringClaim(mapClaims, "name")
	claims.Role, claims.HasRole = RoleFromClaims(mapClaims)
	return claims, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	value, _ := claims[name].(string)
	return strings.TrimSpace(value)
}

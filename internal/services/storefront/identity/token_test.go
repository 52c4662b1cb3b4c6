package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return token
}

func TestInspectUnverifiedReadsClaims(t *testing.T) {
	t.Parallel()

	token := signToken(t, "backend-only", jwt.MapClaims{
		"sub":   "ana@example.com",
		"name":  "Ana",
		"roles": []string{"ROLE_VENDOR"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	if !LooksLikeJWT(token) {
		t.Fatalf("LooksLikeJWT(%q) = false", token)
	}

	claims, err := NewTokenInspector("").Inspect(token)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if claims.Email != "ana@example.com" || claims.Name != "Ana" || claims.Role != RoleVendor || !claims.HasRole {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ExpiresAt.IsZero() {
		t.Fatal("expected expiry")
	}
}

func TestInspectRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token := signToken(t, "secret", jwt.MapClaims{"sub": "x", "exp": time.Now().Add(-time.Minute).Unix()})
	for _, inspector := range []TokenInspector{NewTokenInspector(""), NewTokenInspector("secret")} {
		_, err := inspector.Inspect(token)
		if got := apperrors.KindOf(err); got != apperrors.KindUnauthorized {
			t.Fatalf("verify=%v KindOf(err) = %q, want unauthorized (err=%v)", inspector.Verifies(), got, err)
		}
	}
}

func TestInspectVerifiesSignatureWhenSecretSet(t *testing.T) {
	t.Parallel()

	token := signToken(t, "other", jwt.MapClaims{"sub": "x", "role": "ADMIN"})
	if _, err := NewTokenInspector("secret").Inspect(token); err == nil {
		t.Fatal("expected signature error")
	}
	claims, err := NewTokenInspector("other").Inspect(token)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("Role = %q, want admin", claims.Role)
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "not-a-token", "eyJ.bad.sig"} {
		if _, err := NewTokenInspector("").Inspect(token); apperrors.KindOf(err) != apperrors.KindUnauthorized {
			t.Fatalf("Inspect(%q) err = %v, want unauthorized", token, err)
		}
	}
}

package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	sfi18n "github.com/louisbranch/storefront/internal/services/storefront/platform/i18n"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/requestmeta"
	"golang.org/x/text/language"
)

type stubResolver struct{}

func (stubResolver) ResolveRequestViewer(*http.Request) module.Viewer { return module.Viewer{} }

func (stubResolver) RequestSchemePolicy() requestmeta.SchemePolicy { return requestmeta.SchemePolicy{} }

func (stubResolver) CurrencyCode() string { return "USD" }

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	loc := sfi18n.Printer(language.MustParse("en-US"))
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "keyed", err: apperrors.EK(apperrors.KindInvalidInput, "shop.cart.invalid_quantity", "qty"), want: "Quantity must be at least 1"},
		{name: "backend text", err: apperrors.E(apperrors.KindInvalidInput, "Out of stock"), want: "Out of stock"},
		{name: "hidden", err: apperrors.E(apperrors.KindNotFound, "row 7 missing"), want: "The page you are looking for does not exist."},
		{name: "untyped", err: errors.New("boom"), want: "An unexpected error occurred. Please try again."},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PublicMessage(loc, tc.err); got != tc.want {
				t.Fatalf("PublicMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteAppErrorLocalizesStatusPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/app/admin/users?lang=pt-BR", nil)
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusForbidden, stubResolver{})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Acesso negado") {
		t.Fatalf("body missing localized heading:\n%s", body)
	}
}

func TestWriteAppErrorCoercesUnknownStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, stubResolver{})
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTeapot)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Something went wrong") {
		t.Fatalf("body missing fallback heading:\n%s", body)
	}
}

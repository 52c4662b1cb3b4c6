package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func serve(t *testing.T, m Module, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestModuleIDReturnsDashboard(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "dashboard" {
		t.Fatalf("ID() = %q, want %q", got, "dashboard")
	}
}

func TestHealthyReflectsGateway(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("New().Healthy() = true, want false")
	}
	if !NewWithGateway(fakeGateway{}, testBase("buyer")).Healthy() {
		t.Fatal("Healthy() = false with gateway")
	}
}

func TestMountPrefix(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.DashboardPrefix {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.DashboardPrefix)
	}
}

func TestIndexRedirectsToOwnDashboard(t *testing.T) {
	t.Parallel()

	for _, target := range []string{routepath.AppDashboard, routepath.DashboardPrefix} {
		rr := serve(t, NewWithGateway(fakeGateway{}, testBase("vendor")), target)
		if rr.Code != http.StatusFound {
			t.Fatalf("%s status = %d, want %d", target, rr.Code, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != routepath.Dashboard("vendor") {
			t.Fatalf("%s Location = %q, want %q", target, got, routepath.Dashboard("vendor"))
		}
	}
}

func TestOtherRoleDashboardRedirects(t *testing.T) {
	t.Parallel()

	rr := serve(t, NewWithGateway(fakeGateway{}, testBase("buyer")), routepath.Dashboard("admin"))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Dashboard("buyer") {
		t.Fatalf("Location = %q, want %q", got, routepath.Dashboard("buyer"))
	}
}

func TestBuyerDashboardRendersStats(t *testing.T) {
	t.Parallel()

	rr := serve(t, NewWithGateway(fakeGateway{cart: 7, wishlist: 2, orders: 1}, testBase("buyer")), routepath.Dashboard("buyer"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Ana Lima") {
		t.Fatal("welcome banner missing viewer name")
	}
	if !strings.Contains(body, ">7<") {
		t.Fatalf("cart stat missing: %q", body)
	}
	if !strings.Contains(body, `href="/app/cart"`) {
		t.Fatal("buyer cards missing cart link")
	}
}

func TestAdminDashboardDegradesWithoutGateway(t *testing.T) {
	t.Parallel()

	rr := serve(t, NewWithGateway(nil, testBase("admin")), routepath.Dashboard("admin"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), ">-<") {
		t.Fatal("unavailable stats not shown as placeholder")
	}
}

package storefront

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/modules"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/sessioncookie"
	"github.com/louisbranch/storefront/internal/services/storefront/sessions"
	"github.com/louisbranch/storefront/internal/services/storefront/storage/sqlite"
	"github.com/rs/zerolog"
)

func newTestSessions(t *testing.T) *sessions.Manager {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return sessions.NewManager(store, time.Hour, zerolog.Nop())
}

func newTestHandler(t *testing.T, manager *sessions.Manager) http.Handler {
	t.Helper()
	handler, _, err := NewHandler(HandlerConfig{
		Services: modules.Services{Sessions: manager},
		Currency: "USD",
		Logger:   zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler
}

func signIn(t *testing.T, manager *sessions.Manager, role string) *http.Cookie {
	t.Helper()
	session, err := manager.Create(context.Background(), "token-"+role, module.Viewer{
		SignedIn: true,
		UserID:   "u-" + role,
		Name:     "Test " + role,
		Email:    role + "@shop.test",
		Role:     role,
	}, time.Time{})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &http.Cookie{Name: sessioncookie.Name, Value: session.ID}
}

func TestStaticAssetsAreServed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, nil)
	for _, target := range []string{"/static/app.css", "/static/app.js"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", target, rr.Code, http.StatusOK)
		}
	}
}

func TestResponsesCarryRequestID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestAnonymousVisitorIsSentToLogin(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, newTestSessions(t)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/cart", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/login" {
		t.Fatalf("Location = %q, want %q", got, "/login")
	}
}

func TestUnknownSessionCookieIsAnonymous(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/app/orders", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "missing"})
	rr := httptest.NewRecorder()
	newTestHandler(t, newTestSessions(t)).ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
}

func TestDashboardRedirectsToRoleDashboard(t *testing.T) {
	t.Parallel()

	manager := newTestSessions(t)
	req := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	req.AddCookie(signIn(t, manager, "vendor"))
	rr := httptest.NewRecorder()
	newTestHandler(t, manager).ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/app/dashboard/vendor" {
		t.Fatalf("Location = %q, want %q", got, "/app/dashboard/vendor")
	}
}

func TestRoleGateForbidsOtherRoles(t *testing.T) {
	t.Parallel()

	manager := newTestSessions(t)
	handler := newTestHandler(t, manager)
	tests := []struct {
		role   string
		target string
	}{
		{role: "vendor", target: "/app/cart"},
		{role: "buyer", target: "/app/vendor/products"},
		{role: "buyer", target: "/app/admin/users"},
		{role: "admin", target: "/app/wishlist"},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		req.AddCookie(signIn(t, manager, tc.role))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("%s %s status = %d, want %d", tc.role, tc.target, rr.Code, http.StatusForbidden)
		}
	}
}

func TestCrossOriginMutationIsRejected(t *testing.T) {
	t.Parallel()

	manager := newTestSessions(t)
	req := httptest.NewRequest(http.MethodPost, "/app/cart/clear", strings.NewReader(""))
	req.Header.Set("Origin", "https://evil.test")
	req.AddCookie(signIn(t, manager, "buyer"))
	rr := httptest.NewRecorder()
	newTestHandler(t, manager).ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestPrincipalIsResolvedOncePerRequest(t *testing.T) {
	t.Parallel()

	manager := newTestSessions(t)
	cookie := signIn(t, manager, "buyer")
	resolver := newPrincipalResolver(manager, zerolog.Nop())

	var first, second module.Principal
	handler := withRequestPrincipalState(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first, _ = resolver.resolvePrincipal(r)
		if err := resolver.endSession(r.Context(), r); err != nil {
			t.Errorf("endSession() error = %v", err)
		}
		second, _ = resolver.resolvePrincipal(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if first.Token != "token-buyer" || second != first {
		t.Fatalf("principals = %+v, %+v", first, second)
	}
	if _, ok := resolver.resolvePrincipal(req); ok {
		t.Fatal("ended session still resolves without request state")
	}
}

func TestOpsHealthAndReadiness(t *testing.T) {
	t.Parallel()

	_, mounted, err := NewHandler(HandlerConfig{Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	ops := NewOpsHandler(OpsConfig{
		Modules: mounted,
		Checks: map[string]ReadinessCheck{
			"sqlite": func(context.Context) error { return nil },
			"redis":  func(context.Context) error { return errors.New("connection refused") },
		},
	})

	rr := httptest.NewRecorder()
	ops.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"status":"degraded"`) {
		t.Fatalf("healthz = %d %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	ops.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if body := rr.Body.String(); !strings.Contains(body, `"sqlite":"ok"`) || !strings.Contains(body, "connection refused") {
		t.Fatalf("readyz body = %s", body)
	}

	rr = httptest.NewRecorder()
	ops.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Fatalf("metrics status = %d", rr.Code)
	}
}

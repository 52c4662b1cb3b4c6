package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/sessioncookie"
)

type stubModule struct {
	id    string
	mount module.Mount
	roles []string
}

func (m stubModule) ID() string                    { return m.id }
func (m stubModule) Mount() (module.Mount, error) { return m.mount, nil }

type restrictedModule struct {
	stubModule
}

func (m restrictedModule) AllowedRoles() []string { return m.roles }

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsDuplicateExactPath(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "auth", mount: module.Mount{Paths: []string{"/login"}, Handler: noContent()}},
			stubModule{id: "other", mount: module.Mount{Paths: []string{"/login"}, Handler: noContent()}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "/login") {
		t.Fatalf("err = %v, want duplicate /login error", err)
	}
}

func TestComposeRejectsInvalidMounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mount module.Mount
		want  string
	}{
		{name: "missing leading slash", mount: module.Mount{Prefix: "app/x/", Handler: noContent()}, want: "invalid prefix"},
		{name: "missing trailing slash", mount: module.Mount{Prefix: "/x", Handler: noContent()}, want: "invalid prefix"},
		{name: "whitespace", mount: module.Mount{Prefix: "/x/ ", Handler: noContent()}, want: "invalid prefix"},
		{name: "path with trailing slash", mount: module.Mount{Paths: []string{"/login/"}, Handler: noContent()}, want: "invalid path"},
		{name: "nothing mounted", mount: module.Mount{Handler: noContent()}, want: "prefix or paths"},
		{name: "nil handler", mount: module.Mount{Prefix: "/x/"}, want: "handler is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				PublicModules: []module.Module{stubModule{id: "bad", mount: tc.mount}},
			})
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := err.Error(); !strings.Contains(got, tc.want) || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModules(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{PublicModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil public module error")
	}
	if _, err := Compose(ComposeInput{ProtectedModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil protected module error")
	}
}

func TestComposeRejectsProtectedPathInPublicGroup(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{stubModule{id: "cart", mount: module.Mount{Prefix: "/app/cart/", Handler: noContent()}}},
	})
	if err == nil {
		t.Fatalf("expected protected prefix error")
	}
	_, err = Compose(ComposeInput{
		ProtectedModules: []module.Module{stubModule{id: "home", mount: module.Mount{Prefix: "/home/", Handler: noContent()}}},
	})
	if err == nil {
		t.Fatalf("expected public prefix error")
	}
}

func TestComposeRedirectsAnonymousVisitorsToLogin(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return false },
		ProtectedModules: []module.Module{
			stubModule{id: "cart", mount: module.Mount{Prefix: "/app/cart/", Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, target := range []string{"/app/cart/", "/app/cart"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusFound {
			t.Fatalf("%s status = %d, want %d", target, rr.Code, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != "/login" {
			t.Fatalf("%s Location = %q, want %q", target, got, "/login")
		}
	}
}

func TestComposeServesPublicSlashlessAlias(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "catalog", mount: module.Mount{Prefix: "/products/", Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeAppliesRoleGate(t *testing.T) {
	t.Parallel()

	role := "buyer"
	h, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ResolveRole:  func(*http.Request) string { return role },
		Forbidden: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("forbidden page"))
		}),
		ProtectedModules: []module.Module{
			restrictedModule{stubModule{id: "vendor", roles: []string{" Vendor "}, mount: module.Mount{Prefix: "/app/vendor/", Handler: noContent()}}},
			stubModule{id: "profile", mount: module.Mount{Prefix: "/app/profile/", Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/vendor/products", nil))
	if rr.Code != http.StatusForbidden || rr.Body.String() != "forbidden page" {
		t.Fatalf("vendor as buyer = %d %q, want forbidden page", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/profile/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("profile status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeRequiresSameOriginForSessionMutations(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "cart", mount: module.Mount{Prefix: "/app/cart/", Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		name   string
		origin string
		want   int
	}{
		{name: "missing proof", want: http.StatusForbidden},
		{name: "cross origin", origin: "http://evil.test", want: http.StatusForbidden},
		{name: "same origin", origin: "http://example.com", want: http.StatusNoContent},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/app/cart/clear", nil)
			req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "sess-1"})
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

package modules

import (
	"testing"

	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
)

func moduleIDs(modules []Module) []string {
	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		ids = append(ids, m.ID())
	}
	return ids
}

func TestDefaultModulesOrder(t *testing.T) {
	t.Parallel()

	public := moduleIDs(DefaultPublicModules(Dependencies{}, Services{}))
	wantPublic := []string{"public", "publicauth", "catalog"}
	if len(public) != len(wantPublic) {
		t.Fatalf("public module count = %d, want %d", len(public), len(wantPublic))
	}
	for i, id := range wantPublic {
		if public[i] != id {
			t.Fatalf("public module[%d] id = %q, want %q", i, public[i], id)
		}
	}

	protected := moduleIDs(DefaultProtectedModules(Dependencies{}, Services{}))
	wantProtected := []string{"dashboard", "cart", "wishlist", "orders", "profile", "vendor", "admin"}
	if len(protected) != len(wantProtected) {
		t.Fatalf("protected module count = %d, want %d", len(protected), len(wantProtected))
	}
	for i, id := range wantProtected {
		if protected[i] != id {
			t.Fatalf("protected module[%d] id = %q, want %q", i, protected[i], id)
		}
	}
}

func TestModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	all := append(DefaultPublicModules(Dependencies{}, Services{}), DefaultProtectedModules(Dependencies{}, Services{})...)
	seen := map[string]string{}
	for _, m := range all {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("%s Mount() error = %v", m.ID(), err)
		}
		keys := append([]string{mount.Prefix}, mount.Paths...)
		for _, key := range keys {
			if key == "" {
				continue
			}
			if owner, ok := seen[key]; ok {
				t.Fatalf("route %q claimed by %s and %s", key, owner, m.ID())
			}
			seen[key] = m.ID()
		}
	}
}

func TestModulesWithoutBackendAreUnhealthy(t *testing.T) {
	t.Parallel()

	for _, m := range DefaultProtectedModules(Dependencies{}, Services{}) {
		reporter, ok := m.(module.HealthReporter)
		if !ok {
			t.Fatalf("%s does not report health", m.ID())
		}
		if reporter.Healthy() {
			t.Fatalf("%s Healthy() = true without backend", m.ID())
		}
	}
}

func TestModulesWithBackendAreHealthy(t *testing.T) {
	t.Parallel()

	client, err := backendapi.New(backendapi.Config{BaseURL: "http://backend.test"})
	if err != nil {
		t.Fatalf("backendapi.New() error = %v", err)
	}
	for _, m := range DefaultProtectedModules(Dependencies{}, Services{Backend: client}) {
		if m.ID() == "vendor" {
			continue
		}
		if !m.(module.HealthReporter).Healthy() {
			t.Fatalf("%s Healthy() = false with backend", m.ID())
		}
	}
}

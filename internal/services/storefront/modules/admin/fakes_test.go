package admin

import (
	"context"
	"fmt"
	"sync"
	"time"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
)

// fakeGateway implements UserGateway and records mutations.
type fakeGateway struct {
	mu    sync.Mutex
	users []User
	err   error
	calls []string
}

var _ UserGateway = (*fakeGateway)(nil)

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) ListUsers(context.Context, string) ([]User, error) {
	return f.users, f.err
}

func (f *fakeGateway) SetActive(_ context.Context, _ string, userID string, active bool) error {
	f.record(fmt.Sprintf("active %s %t", userID, active))
	return nil
}

func (f *fakeGateway) DeleteUser(_ context.Context, _ string, userID string) error {
	f.record("delete " + userID)
	return nil
}

func (f *fakeGateway) ChangeRole(_ context.Context, _ string, userID string, role identity.Role) error {
	f.record(fmt.Sprintf("role %s %s", userID, role))
	return nil
}

func sampleUsers() []User {
	joined := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []User{
		{ID: "1", Name: "Ana Souza", Email: "ana@shop.test", Role: identity.RoleBuyer, Active: true, CreatedAt: joined},
		{ID: "2", Name: "Bruno Lima", Email: "bruno@vendors.test", Role: identity.RoleVendor, Active: true, CreatedAt: joined},
		{ID: "3", Name: "Carla Dias", Email: "carla@shop.test", Role: identity.RoleBuyer, Active: false, CreatedAt: joined},
		{ID: "9", Name: "Root", Email: "root@shop.test", Role: identity.RoleAdmin, Active: true, CreatedAt: joined},
	}
}

func testBase() modulehandler.Base {
	return modulehandler.NewTestBase(module.Principal{
		SessionID: "sess-1",
		Token:     "token",
		Viewer:    module.Viewer{SignedIn: true, UserID: "9", Name: "Root", Email: "root@shop.test", Role: "admin"},
	})
}

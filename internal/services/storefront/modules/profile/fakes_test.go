package profile

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
)

type fakeGateway struct {
	profile   Profile
	err       error
	updateErr error
	updates   []Update
}

var _ ProfileGateway = (*fakeGateway)(nil)

func (f *fakeGateway) Profile(context.Context, string) (Profile, error) {
	return f.profile, f.err
}

func (f *fakeGateway) UpdateProfile(_ context.Context, _ string, update Update) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, update)
	return nil
}

type fakeSessions struct {
	sessionID string
	viewer    module.Viewer
	calls     int
}

func (f *fakeSessions) UpdateUser(_ context.Context, sessionID string, viewer module.Viewer) error {
	f.calls++
	f.sessionID = sessionID
	f.viewer = viewer
	return nil
}

func buyerProfile() Profile {
	return Profile{
		ID:              "7",
		Name:            "Ana Lima",
		Email:           "ana@example.com",
		Role:            identity.RoleBuyer,
		ShippingAddress: "1 Main St",
		PaymentMethods:  "visa,  paypal",
	}
}

func testViewer(role string) module.Viewer {
	return module.Viewer{SignedIn: true, UserID: "7", Name: "Ana", Email: "ana@example.com", Role: role}
}

func testBase(role string) modulehandler.Base {
	return modulehandler.NewTestBase(module.Principal{SessionID: "sess-1", Token: "token", Viewer: testViewer(role)})
}

func ptr(s string) *string { return &s }

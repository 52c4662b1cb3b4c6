package publicauth

import (
	"context"
	"sync"
	"time"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
)

// fakeGateway implements AuthGateway for tests with configurable return
// values and error injection.
type fakeGateway struct {
	login         LoginResult
	loginErr      error
	registerErr   error
	forgotErr     error
	resetErr      error
	profile       UserSnapshot
	profileErr    error
	registrations *[]Registration
}

var _ AuthGateway = fakeGateway{}

func (f fakeGateway) Login(context.Context, string, string) (LoginResult, error) {
	return f.login, f.loginErr
}

func (f fakeGateway) Register(_ context.Context, registration Registration) error {
	if f.registrations != nil {
		*f.registrations = append(*f.registrations, registration)
	}
	return f.registerErr
}

func (f fakeGateway) ForgotPassword(context.Context, string) error {
	return f.forgotErr
}

func (f fakeGateway) ResetPassword(context.Context, string, string) error {
	return f.resetErr
}

func (f fakeGateway) Profile(context.Context, string) (UserSnapshot, error) {
	if f.profileErr != nil {
		return UserSnapshot{}, f.profileErr
	}
	return f.profile, nil
}

// fakeSessions records issued and ended sessions.
type fakeSessions struct {
	mu      sync.Mutex
	created []storage.Session
	viewers []module.Viewer
	ended   []string
	err     error
}

var _ SessionIssuer = (*fakeSessions)(nil)

func (f *fakeSessions) Create(_ context.Context, token string, viewer module.Viewer, tokenExpiry time.Time) (storage.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return storage.Session{}, f.err
	}
	expires := tokenExpiry
	if expires.IsZero() {
		expires = time.Now().Add(time.Hour)
	}
	session := storage.Session{ID: "sess-1", Token: token, ExpiresAt: expires}
	f.created = append(f.created, session)
	f.viewers = append(f.viewers, viewer)
	return session, nil
}

func (f *fakeSessions) End(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ended = append(f.ended, id)
	return nil
}

// fakeTokens returns fixed claims.
type fakeTokens struct {
	claims identity.Claims
	err    error
}

func (f fakeTokens) Inspect(string) (identity.Claims, error) {
	return f.claims, f.err
}

func anonymousBase() publichandler.Base {
	return publichandler.Base{Base: modulehandler.NewTestBase(module.Principal{})}
}

func signedInBase(role string) publichandler.Base {
	return publichandler.Base{Base: modulehandler.NewTestBase(module.Principal{
		Token:  "token",
		Viewer: module.Viewer{SignedIn: true, Name: "Ana", Role: role},
	})}
}

const testJWT = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig"

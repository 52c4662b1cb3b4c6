package storefront

import (
	"context"
	"net/http"
	"sync"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/sessioncookie"
	"github.com/louisbranch/storefront/internal/services/storefront/sessions"
	"github.com/rs/zerolog"
)

// requestPrincipalState memoizes the session lookup for one request so the
// auth gate, role gate and handlers share a single store read.
type requestPrincipalState struct {
	once      sync.Once
	principal module.Principal
	ok        bool
}

type requestPrincipalStateKey struct{}

func withRequestPrincipalState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, &requestPrincipalState{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}

type principalResolver struct {
	sessions *sessions.Manager
	logger   zerolog.Logger
}

func newPrincipalResolver(manager *sessions.Manager, logger zerolog.Logger) principalResolver {
	return principalResolver{sessions: manager, logger: logger}
}

func (p principalResolver) resolvePrincipalUncached(r *http.Request) (module.Principal, bool) {
	if r == nil || p.sessions == nil {
		return module.Principal{}, false
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return module.Principal{}, false
	}
	session, ok, err := p.sessions.Load(r.Context(), sessionID)
	if err != nil {
		p.logger.Warn().Err(err).Msg("load session")
		return module.Principal{}, false
	}
	if !ok {
		return module.Principal{}, false
	}
	return module.Principal{
		SessionID: session.ID,
		Token:     session.Token,
		Viewer:    sessions.ViewerFromSession(session),
	}, true
}

func (p principalResolver) resolvePrincipal(r *http.Request) (module.Principal, bool) {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.once.Do(func() {
			state.principal, state.ok = p.resolvePrincipalUncached(r)
		})
		return state.principal, state.ok
	}
	return p.resolvePrincipalUncached(r)
}

func (p principalResolver) resolveViewer(r *http.Request) module.Viewer {
	principal, ok := p.resolvePrincipal(r)
	if !ok {
		return module.Viewer{}
	}
	return principal.Viewer
}

func (p principalResolver) authRequired(r *http.Request) bool {
	_, ok := p.resolvePrincipal(r)
	return ok
}

func (p principalResolver) resolveRole(r *http.Request) string {
	return p.resolveViewer(r).Role
}

// endSession deletes the request's session. The cookie is cleared by the
// caller.
func (p principalResolver) endSession(ctx context.Context, r *http.Request) error {
	if p.sessions == nil {
		return nil
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return nil
	}
	return p.sessions.End(ctx, sessionID)
}

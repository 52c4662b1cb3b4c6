// Package modulehandler provides a composable base for protected storefront
// module handlers.
//
// Protected modules share viewer resolution, backend token lookup, page
// rendering and error handling. Modules embed Base rather than duplicating
// that scaffold.
package modulehandler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	flashnotice "github.com/louisbranch/storefront/internal/services/storefront/platform/flash"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/pagerender"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/sessioncookie"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/weberror"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
	"github.com/rs/zerolog"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// NewTestBase builds a handler base with a fixed principal.
func NewTestBase(principal module.Principal) Base {
	return Base{deps: module.Dependencies{
		ResolveViewer: func(*http.Request) module.Viewer { return principal.Viewer },
		ResolvePrincipal: func(*http.Request) (module.Principal, bool) {
			return principal, principal.Token != ""
		},
		Logger: zerolog.Nop(),
	}}
}

// ResolveRequestViewer resolves header viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return b.deps.ResolveViewer(r)
}

// RequestSchemePolicy returns the scheme policy used for cookies.
func (b Base) RequestSchemePolicy() requestmeta.SchemePolicy {
	return b.deps.RequestSchemePolicy
}

// CurrencyCode returns the configured display currency.
func (b Base) CurrencyCode() string {
	return b.deps.Currency
}

// Logger returns the handler logger.
func (b Base) Logger() *zerolog.Logger {
	return &b.deps.Logger
}

// RequestPrincipal returns the authenticated principal.
func (b Base) RequestPrincipal(r *http.Request) (module.Principal, bool) {
	if r == nil || b.deps.ResolvePrincipal == nil {
		return module.Principal{}, false
	}
	return b.deps.ResolvePrincipal(r)
}

// RequestContextAndToken returns the request context and backend token.
func (b Base) RequestContextAndToken(r *http.Request) (context.Context, string) {
	principal, _ := b.RequestPrincipal(r)
	return httpx.RequestContext(r), strings.TrimSpace(principal.Token)
}

// PageContext returns the shared template context for a request.
func (b Base) PageContext(r *http.Request) templates.PageContext {
	return pagerender.PageContext(r, b)
}

// WritePage renders a page (HTMX-aware) inside the storefront layout.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WritePage(w, r, b, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized error response. A backend rejection of
// the bearer token ends the session and sends the visitor to login.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.KindOf(err) == apperrors.KindUnauthorized {
		b.EndSession(w, r)
		b.Redirect(w, r, routepath.Login, flashnotice.Failure("errors.session_expired"))
		return
	}
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		b.deps.Logger.Error().Err(err).
			Str("path", requestPath(r)).
			Str("request_id", httpx.RequestIDFromContext(httpx.RequestContext(r))).
			Msg("request failed")
	}
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// WriteForbidden renders a 403 page.
func (b Base) WriteForbidden(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusForbidden, b)
}

// EndSession drops the server-side session and clears the cookie.
func (b Base) EndSession(w http.ResponseWriter, r *http.Request) {
	if b.deps.EndSession != nil {
		if err := b.deps.EndSession(httpx.RequestContext(r), r); err != nil {
			b.deps.Logger.Warn().Err(err).Msg("end session")
		}
	}
	sessioncookie.Clear(w, r, b.deps.RequestSchemePolicy)
}

// Redirect writes a one-time notice and redirects.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.deps.RequestSchemePolicy)
	httpx.WriteRedirect(w, r, location)
}

// RefererPath returns the same-host Referer path and query, or fallback.
func RefererPath(r *http.Request, fallback string) string {
	if r == nil {
		return fallback
	}
	referer, err := url.Parse(strings.TrimSpace(r.Referer()))
	if err != nil || referer.Host == "" || !strings.EqualFold(referer.Host, r.Host) {
		return fallback
	}
	return requestmeta.SafeRedirectPath(referer.RequestURI(), fallback)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}

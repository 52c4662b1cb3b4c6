// Package pagerender centralizes storefront page rendering.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/storefront/internal/platform/money"
	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	flashnotice "github.com/louisbranch/storefront/internal/services/storefront/platform/flash"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	sfi18n "github.com/louisbranch/storefront/internal/services/storefront/platform/i18n"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

// RequestResolver resolves viewer and rendering settings for a request.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	RequestSchemePolicy() requestmeta.SchemePolicy
	CurrencyCode() string
}

// Page describes one page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// PageContext builds the shared template context for a request.
func PageContext(r *http.Request, resolver RequestResolver) templates.PageContext {
	tag := sfi18n.ResolveTag(r)
	currency := ""
	if resolver != nil {
		currency = resolver.CurrencyCode()
	}
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	return templates.PageContext{
		Loc:   sfi18n.Printer(tag),
		Lang:  tag,
		Money: money.NewFormatter(currency, tag),
		Path:  path,
	}
}

// WritePage writes a page inside the storefront layout. HTMX requests get
// only the main region.
func WritePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	loc, tag := sfi18n.ResolveLocalizer(w, r)
	policy := requestmeta.SchemePolicy{}
	viewer := module.Viewer{}
	if resolver != nil {
		policy = resolver.RequestSchemePolicy()
		viewer = resolver.ResolveRequestViewer(r)
	}
	toast := resolveFlashToast(w, r, loc, policy)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var component templ.Component
	if httpx.IsHTMXRequest(r) {
		component = templates.MainContent(toast)
	} else {
		path := ""
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		component = templates.Layout(templates.LayoutData{
			Title:  page.Title,
			Lang:   tag.String(),
			Loc:    loc,
			Header: templates.BuildHeader(loc, HeaderUser(viewer), path),
			Toast:  toast,
		})
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// HeaderUser maps a viewer into header chrome.
func HeaderUser(viewer module.Viewer) templates.HeaderUser {
	if !viewer.SignedIn {
		return templates.HeaderUser{}
	}
	return templates.HeaderUser{
		SignedIn: true,
		Name:     viewer.Name,
		Initials: identity.Initials(viewer.Name),
		Role:     identity.ParseRole(viewer.Role).String(),
	}
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc sfi18n.Localizer, policy requestmeta.SchemePolicy) *templates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key))
	if message == "" {
		message = notice.Key
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: message}
}

// Package publichandler provides a shared base for storefront handlers that
// serve anonymous visitors as well as signed-in users.
package publichandler

import (
	"net/http"

	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
)

// Base adds signed-in detection to the module handler base. Public pages
// render the same layout, so rendering and error handling are shared.
type Base struct {
	modulehandler.Base
}

// NewBase builds a public handler base.
func NewBase(deps module.Dependencies) Base {
	return Base{Base: modulehandler.NewBase(deps)}
}

// IsViewerSignedIn reports whether the request carries a live session.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	return b.ResolveRequestViewer(r).SignedIn
}

// ViewerRole returns the signed-in role, or "" for anonymous visitors.
func (b Base) ViewerRole(r *http.Request) string {
	viewer := b.ResolveRequestViewer(r)
	if !viewer.SignedIn {
		return ""
	}
	return viewer.Role
}

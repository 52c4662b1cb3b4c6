package dashboard

import (
	"net/http"
	"strings"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) viewerRole(r *http.Request) identity.Role {
	return identity.ParseRole(h.ResolveRequestViewer(r).Role)
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, identity.DashboardPath(h.viewerRole(r)))
}

// handleRoleRoute renders the viewer's own dashboard. Any other role
// segment redirects there.
func (h handlers) handleRoleRoute(w http.ResponseWriter, r *http.Request) {
	role := h.viewerRole(r)
	if strings.ToLower(strings.TrimSpace(r.PathValue("role"))) != role.String() {
		httpx.WriteRedirect(w, r, identity.DashboardPath(role))
		return
	}
	ctx, token := h.RequestContextAndToken(r)
	stats, err := h.service.loadStats(ctx, token, role)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	viewer := h.ResolveRequestViewer(r)
	tiles := make([]templates.StatTile, 0, len(stats))
	for _, stat := range stats {
		tiles = append(tiles, templates.StatTile{Label: page.T(stat.LabelKey), Value: stat.Value})
	}
	view := templates.DashboardView{
		PageContext: page,
		Banner:      templates.BuildWelcomeBanner(page.Loc, viewer.Name, role.String()),
		Stats:       tiles,
		Cards:       templates.DashboardCardsFor(page.Loc, role.String()),
	}
	h.WritePage(w, r, page.T("core.dashboard.title"), http.StatusOK, templates.DashboardPage(view))
}

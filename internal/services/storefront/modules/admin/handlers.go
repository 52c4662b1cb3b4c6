package admin

import (
	"net/http"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	flashnotice "github.com/louisbranch/storefront/internal/services/storefront/platform/flash"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.AppAdminUsers)
}

func (h handlers) handleUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := NormalizeFilter(query.Get(routepath.AdminUsersSearchKey), query.Get(routepath.AdminUsersRoleQueryKey))
	ctx, token := h.RequestContextAndToken(r)
	users, err := h.service.listUsers(ctx, token, filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	rows := make([]templates.UserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, templates.UserRow{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role.String(),
			Active:    user.Active,
			CreatedAt: user.CreatedAt,
		})
	}
	page := h.PageContext(r)
	view := templates.AdminUsersView{
		PageContext: page,
		Users:       rows,
		Query:       filter.Query,
		Role:        filter.Role,
		Roles:       RoleFilters(),
	}
	h.WritePage(w, r, page.T("admin.users.title"), http.StatusOK, templates.AdminUsersPage(view))
}

func (h handlers) actorID(r *http.Request) string {
	return h.ResolveRequestViewer(r).UserID
}

// finish redirects back to the filtered list. Input and conflict errors
// become a failure notice; everything else goes through WriteError.
func (h handlers) finish(w http.ResponseWriter, r *http.Request, err error, success string) {
	back := modulehandler.RefererPath(r, routepath.AppAdminUsers)
	if err == nil {
		h.Redirect(w, r, back, flashnotice.Success(success))
		return
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput, apperrors.KindConflict:
		h.Redirect(w, r, back, flashnotice.Failure(apperrors.LocalizationKey(err)))
	case apperrors.KindNotFound:
		h.WriteNotFound(w, r)
	default:
		h.WriteError(w, r, err)
	}
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.finish(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_form", "parse form"), "")
		return
	}
	ctx, token := h.RequestContextAndToken(r)
	active, err := h.service.toggleActive(ctx, token, h.actorID(r), r.PathValue("userID"), r.PostForm.Get("active"))
	notice := "admin.users.deactivated"
	if active {
		notice = "admin.users.activated"
	}
	h.finish(w, r, err, notice)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	err := h.service.deleteUser(ctx, token, h.actorID(r), r.PathValue("userID"))
	h.finish(w, r, err, "admin.users.deleted")
}

func (h handlers) handleRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.finish(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_form", "parse form"), "")
		return
	}
	ctx, token := h.RequestContextAndToken(r)
	err := h.service.changeRole(ctx, token, h.actorID(r), r.PathValue("userID"), r.PostForm.Get("role"))
	h.finish(w, r, err, "admin.users.role_changed")
}

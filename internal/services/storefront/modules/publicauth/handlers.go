package publicauth

import (
	"net/http"
	"strings"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	flashnotice "github.com/louisbranch/storefront/internal/services/storefront/platform/flash"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/sessioncookie"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/weberror"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// redirectSignedIn sends signed-in visitors to their dashboard.
func (h handlers) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	if !h.IsViewerSignedIn(r) {
		return false
	}
	httpx.WriteRedirect(w, r, identity.DashboardPath(identity.ParseRole(h.ViewerRole(r))))
	return true
}

// formError returns the localized message for a validation failure, or ""
// when err should be handled as a page error.
func (h handlers) formError(r *http.Request, err error) string {
	if apperrors.KindOf(err) != apperrors.KindInvalidInput {
		return ""
	}
	return weberror.PublicMessage(h.PageContext(r).Loc, err)
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.renderLogin(w, r, http.StatusOK, "", "")
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, email, message string) {
	page := h.PageContext(r)
	view := templates.LoginView{PageContext: page, Email: email, Error: message}
	h.WritePage(w, r, page.T("auth.login.title"), status, templates.LoginPage(view))
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "", h.PageContext(r).T("errors.invalid_form"))
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	session, viewer, err := h.service.login(httpx.RequestContext(r), email, r.PostForm.Get("password"))
	if err != nil {
		if message := h.formError(r, err); message != "" {
			h.renderLogin(w, r, apperrors.HTTPStatus(err), email, message)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	sessioncookie.Write(w, r, session.ID, session.ExpiresAt, h.RequestSchemePolicy())
	h.Logger().Info().Str("user_id", viewer.UserID).Str("role", viewer.Role).Msg("signed in")
	h.Redirect(w, r, identity.DashboardPath(identity.ParseRole(viewer.Role)), flashnotice.Success("auth.login.success"))
}

func (h handlers) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.renderRegister(w, r, http.StatusOK, RegisterForm{Role: identity.RoleBuyer.String()}, "")
}

func (h handlers) renderRegister(w http.ResponseWriter, r *http.Request, status int, form RegisterForm, message string) {
	page := h.PageContext(r)
	roles := make([]string, 0, len(identity.Roles()))
	for _, role := range identity.Roles() {
		roles = append(roles, role.String())
	}
	view := templates.RegisterView{
		PageContext: page,
		Name:        form.Name,
		Email:       form.Email,
		Role:        strings.ToLower(strings.TrimSpace(form.Role)),
		Roles:       roles,
		Error:       message,
	}
	h.WritePage(w, r, page.T("auth.register.title"), status, templates.RegisterPage(view))
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, r, http.StatusBadRequest, RegisterForm{}, h.PageContext(r).T("errors.invalid_form"))
		return
	}
	form := RegisterForm{
		Name:            r.PostForm.Get("name"),
		Email:           r.PostForm.Get("email"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
		Role:            r.PostForm.Get("role"),
	}
	if err := h.service.register(httpx.RequestContext(r), form); err != nil {
		if message := h.formError(r, err); message != "" {
			h.renderRegister(w, r, apperrors.HTTPStatus(err), form, message)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.Login, flashnotice.Success("auth.register.success"))
}

func (h handlers) handleForgotPage(w http.ResponseWriter, r *http.Request) {
	h.renderForgot(w, r, http.StatusOK, "", "")
}

func (h handlers) renderForgot(w http.ResponseWriter, r *http.Request, status int, email, message string) {
	page := h.PageContext(r)
	view := templates.ForgotPasswordView{PageContext: page, Email: email, Error: message}
	h.WritePage(w, r, page.T("auth.forgot.title"), status, templates.ForgotPasswordPage(view))
}

func (h handlers) handleForgot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForgot(w, r, http.StatusBadRequest, "", h.PageContext(r).T("errors.invalid_form"))
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	if err := h.service.forgotPassword(httpx.RequestContext(r), email); err != nil {
		if message := h.formError(r, err); message != "" {
			h.renderForgot(w, r, apperrors.HTTPStatus(err), email, message)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.Login, flashnotice.Info("auth.forgot.sent"))
}

func (h handlers) handleResetPage(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get(routepath.ResetPasswordTokenKey))
	message := ""
	if token == "" {
		message = h.PageContext(r).T("auth.error.reset_token_missing")
	}
	h.renderReset(w, r, http.StatusOK, token, message)
}

func (h handlers) renderReset(w http.ResponseWriter, r *http.Request, status int, token, message string) {
	page := h.PageContext(r)
	view := templates.ResetPasswordView{PageContext: page, Token: token, Error: message}
	h.WritePage(w, r, page.T("auth.reset.title"), status, templates.ResetPasswordPage(view))
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderReset(w, r, http.StatusBadRequest, "", h.PageContext(r).T("errors.invalid_form"))
		return
	}
	form := ResetForm{
		Token:           r.PostForm.Get("token"),
		NewPassword:     r.PostForm.Get("newPassword"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
	}
	if err := h.service.resetPassword(httpx.RequestContext(r), form); err != nil {
		if message := h.formError(r, err); message != "" {
			h.renderReset(w, r, apperrors.HTTPStatus(err), strings.TrimSpace(form.Token), message)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.Login, flashnotice.Success("auth.reset.success"))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessioncookie.Read(r)
	if ok && !requestmeta.HasSameOriginProof(r, h.RequestSchemePolicy()) {
		h.WriteForbidden(w, r)
		return
	}
	if ok {
		if err := h.service.logout(httpx.RequestContext(r), sessionID); err != nil {
			h.Logger().Warn().Err(err).Msg("end session")
		}
	}
	sessioncookie.Clear(w, r, h.RequestSchemePolicy())
	h.Redirect(w, r, routepath.Root, flashnotice.Info("auth.logout.success"))
}

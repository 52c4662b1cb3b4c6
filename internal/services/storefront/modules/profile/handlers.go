package profile

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	flashnotice "github.com/louisbranch/storefront/internal/services/storefront/platform/flash"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/weberror"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

// maxImageBytes caps avatar uploads.
const maxImageBytes = 5 << 20

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
	ctx, token := h.RequestContextAndToken(r)
	profile, err := h.service.load(ctx, token)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	principal, _ := h.RequestPrincipal(r)
	viewer, err := h.service.refreshSession(ctx, principal.SessionID, h.ResolveRequestViewer(r), profile)
	if err != nil {
		h.Logger().Warn().Err(err).Msg("refresh session user")
	}
	page := h.PageContext(r)
	details := templates.ProfileDetails{
		Name:            viewer.Name,
		Email:           viewer.Email,
		Role:            identity.ParseRole(viewer.Role).String(),
		Initials:        identity.Initials(viewer.Name),
		ImageURL:        viewer.ImageURL,
		ShippingAddress: profile.ShippingAddress,
		BillingAddress:  profile.BillingAddress,
		PaymentMethods:  SplitMethods(profile.PaymentMethods),
		BusinessName:    profile.BusinessName,
		BusinessAddress: profile.BusinessAddress,
		ContactNumber:   profile.ContactNumber,
	}
	view := templates.ProfileView{PageContext: page, Profile: details}
	h.WritePage(w, r, page.T("account.profile.title"), http.StatusOK, templates.ProfilePage(view))
}

func (h handlers) handleEditPage(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	profile, err := h.service.load(ctx, token)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	form := templates.ProfileForm{
		Name:            profile.Name,
		ImageURL:        profile.ImageURL,
		ShippingAddress: profile.ShippingAddress,
		BillingAddress:  profile.BillingAddress,
		PaymentMethods:  normalizeMethods(profile.PaymentMethods),
	}
	h.renderEdit(w, r, http.StatusOK, form, "")
}

func (h handlers) renderEdit(w http.ResponseWriter, r *http.Request, status int, form templates.ProfileForm, message string) {
	page := h.PageContext(r)
	view := templates.ProfileEditView{
		PageContext: page,
		Form:        form,
		IsBuyer:     h.viewerRole(r) == identity.RoleBuyer,
		Error:       message,
	}
	h.WritePage(w, r, page.T("account.profile.edit_title"), status, templates.ProfileEditPage(view))
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+(1<<20))
	if err := r.ParseMultipartForm(maxImageBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderEdit(w, r, http.StatusBadRequest, templates.ProfileForm{}, h.PageContext(r).T("errors.invalid_form"))
		return
	}
	form := Form{
		Name:            r.FormValue("name"),
		ImageURL:        r.FormValue("imageUrl"),
		ShippingAddress: r.FormValue("shippingAddress"),
		BillingAddress:  r.FormValue("billingAddress"),
		PaymentMethods:  r.FormValue("paymentMethods"),
	}
	image, err := readImage(r)
	if err != nil {
		h.renderEdit(w, r, http.StatusBadRequest, echoForm(form), h.PageContext(r).T("account.profile.invalid_image"))
		return
	}
	form.Image = image

	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.save(ctx, token, h.viewerRole(r), form); err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			h.renderEdit(w, r, apperrors.HTTPStatus(err), echoForm(form), weberror.PublicMessage(h.PageContext(r).Loc, err))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.AppProfile, flashnotice.Success("account.profile.updated"))
}

func echoForm(form Form) templates.ProfileForm {
	return templates.ProfileForm{
		Name:            form.Name,
		ImageURL:        form.ImageURL,
		ShippingAddress: form.ShippingAddress,
		BillingAddress:  form.BillingAddress,
		PaymentMethods:  form.PaymentMethods,
	}
}

// readImage returns the uploaded avatar, or nil when none was chosen.
func readImage(r *http.Request) (*Image, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("read image: %w", err)
	}
	defer func(f multipart.File) {
		_ = f.Close()
	}(file)
	if header.Size == 0 {
		return nil, nil
	}
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	contentType := strings.TrimSpace(header.Header.Get("Content-Type"))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &Image{Filename: header.Filename, ContentType: contentType, Data: data}, nil
}

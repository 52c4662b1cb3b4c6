package cart

import (
	"net/http"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	flashnotice "github.com/louisbranch/storefront/internal/services/storefront/platform/flash"
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
	ctx, token := h.RequestContextAndToken(r)
	summary, err := h.service.summary(ctx, token)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	view := templates.CartView{
		PageContext: page,
		Items:       cartLines(summary.Items),
		Total:       summary.Totals.Amount,
		Count:       summary.Totals.Count,
	}
	h.WritePage(w, r, page.T("shop.cart.title"), http.StatusOK, templates.CartPage(view))
}

func (h handlers) handleCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	viewer := h.ResolveRequestViewer(r)
	checkout, err := h.service.checkout(ctx, token, Shopper{Name: viewer.Name, Email: viewer.Email})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindConflict {
			h.Redirect(w, r, routepath.AppCart, flashnotice.Failure(apperrors.LocalizationKey(err)))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	view := templates.CheckoutView{
		PageContext: page,
		Items:       cartLines(checkout.Items),
		Total:       checkout.Totals.Amount,
		Count:       checkout.Totals.Count,
		Name:        checkout.Shopper.Name,
		Email:       checkout.Shopper.Email,
		Shipping:    checkout.Shopper.ShippingAddress,
	}
	h.WritePage(w, r, page.T("shop.checkout.title"), http.StatusOK, templates.CheckoutPage(view))
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_form", "parse form"))
		return
	}
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.add(ctx, token, r.PathValue("productID"), r.PostForm.Get("quantity")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, modulehandler.RefererPath(r, routepath.AppCart), flashnotice.Success("shop.cart.added"))
}

func (h handlers) handleQuantity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_form", "parse form"))
		return
	}
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.updateQuantity(ctx, token, r.PathValue("productID"), r.PostForm.Get("quantity")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.AppCart, flashnotice.Success("shop.cart.updated"))
}

func (h handlers) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.remove(ctx, token, r.PathValue("productID")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.AppCart, flashnotice.Success("shop.cart.removed"))
}

func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.clear(ctx, token); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.AppCart, flashnotice.Info("shop.cart.cleared"))
}

func cartLines(items []Item) []templates.CartLine {
	lines := make([]templates.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, templates.CartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Stock:     item.Stock,
		})
	}
	return lines
}

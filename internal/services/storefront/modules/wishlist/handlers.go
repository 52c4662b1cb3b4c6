package wishlist

import (
	"net/http"

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
	items, err := h.service.list(ctx, token)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	lines := make([]templates.WishlistLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, templates.WishlistLine{
			ProductID:   item.ProductID,
			Name:        item.Name,
			ImageURL:    item.ImageURL,
			Description: item.Description,
			Category:    item.Category,
			Price:       item.Price,
			Stock:       item.Stock,
			AddedAt:     item.AddedAt,
		})
	}
	view := templates.WishlistView{PageContext: page, Items: lines}
	h.WritePage(w, r, page.T("shop.wishlist.title"), http.StatusOK, templates.WishlistPage(view))
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.add(ctx, token, r.PathValue("productID")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, modulehandler.RefererPath(r, routepath.AppWishlist), flashnotice.Success("shop.wishlist.added_notice"))
}

func (h handlers) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.remove(ctx, token, r.PathValue("productID")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.AppWishlist, flashnotice.Success("shop.wishlist.removed"))
}

func (h handlers) handleMoveToCart(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.moveToCart(ctx, token, r.PathValue("productID")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.AppWishlist, flashnotice.Success("shop.wishlist.moved"))
}

func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	if err := h.service.clear(ctx, token); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.AppWishlist, flashnotice.Info("shop.wishlist.cleared"))
}

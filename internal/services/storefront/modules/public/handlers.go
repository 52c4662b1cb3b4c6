package public

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	page := h.PageContext(r)
	snapshot, err := h.service.loadHome(httpx.RequestContext(r))
	if err != nil {
		h.Logger().Warn().Err(err).Msg("load featured products")
	}
	view := templates.HomeView{
		PageContext: page,
		Featured:    productCards(snapshot.Featured),
		Categories:  snapshot.Categories,
	}
	h.WritePage(w, r, page.T("shop.home.title"), http.StatusOK, templates.HomePage(view))
}

func (h handlers) handleSupport(w http.ResponseWriter, r *http.Request) {
	page := h.PageContext(r)
	view := templates.SupportView{PageContext: page, Email: SupportEmail, Phone: SupportPhone}
	h.WritePage(w, r, page.T("shop.support.title"), http.StatusOK, templates.SupportPage(view))
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func productCards(products []Product) []templates.ProductCard {
	cards := make([]templates.ProductCard, 0, len(products))
	for _, product := range products {
		cards = append(cards, templates.ProductCard{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Category:    product.Category,
			ImageURL:    product.ImageURL,
			Price:       product.Price,
			Stock:       product.Stock,
		})
	}
	return cards
}

package catalog

import (
	"net/http"
	"strings"

	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/publichandler"
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

// canShop reports whether the viewer gets cart and wishlist buttons.
func (h handlers) canShop(r *http.Request) bool {
	return h.ViewerRole(r) == identity.RoleBuyer.String()
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := Filter{
		Query:    strings.TrimSpace(query.Get(routepath.ProductsQueryKey)),
		Category: strings.TrimSpace(query.Get(routepath.ProductsCategoryKey)),
	}
	listing, err := h.service.listProducts(httpx.RequestContext(r), filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	view := templates.ProductsView{
		PageContext: page,
		Products:    productCards(listing.Products),
		Categories:  listing.Categories,
		Query:       filter.Query,
		Category:    filter.Category,
		CanShop:     h.canShop(r),
	}
	h.WritePage(w, r, page.T("shop.products.title"), http.StatusOK, templates.ProductsPage(view))
}

func (h handlers) handleDetailRoute(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(r.PathValue("productID"))
	if productID == "" {
		h.WriteNotFound(w, r)
		return
	}
	product, err := h.service.getProduct(httpx.RequestContext(r), productID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			h.WriteNotFound(w, r)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	view := templates.ProductDetailView{PageContext: page, Product: productCard(product), CanShop: h.canShop(r)}
	h.WritePage(w, r, product.Name, http.StatusOK, templates.ProductDetailPage(view))
}

func productCard(product Product) templates.ProductCard {
	return templates.ProductCard{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Price:       product.Price,
		Stock:       product.Stock,
		VendorName:  product.VendorName,
	}
}

func productCards(products []Product) []templates.ProductCard {
	cards := make([]templates.ProductCard, 0, len(products))
	for _, product := range products {
		cards = append(cards, productCard(product))
	}
	return cards
}

package cart

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCart, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCartCheckout, h.handleCheckout)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCartItemPattern, h.handleAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCartItemQtyPattern, h.handleQuantity)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCartItemRemovePattern, h.handleRemove)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCartClear, h.handleClear)
	mux.HandleFunc(routepath.CartPrefix, h.WriteNotFound)
}

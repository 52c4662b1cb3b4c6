package wishlist

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppWishlist, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.WishlistPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppWishlistItemPattern, h.handleAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppWishlistItemRemovePattern, h.handleRemove)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppWishlistItemMovePattern, h.handleMoveToCart)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppWishlistClear, h.handleClear)
	mux.HandleFunc(routepath.WishlistPrefix, h.WriteNotFound)
}

package catalog

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Products, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductPattern, h.handleDetailRoute)
	mux.HandleFunc(routepath.ProductsPrefix, h.WriteNotFound)
}

package orders

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppOrders, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.OrdersPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppOrderPattern, h.handleDetailRoute)
	mux.HandleFunc(routepath.OrdersPrefix, h.WriteNotFound)
}

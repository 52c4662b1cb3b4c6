package profile

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfile, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfileEdit, h.handleEditPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProfileEdit, h.handleEdit)
	mux.HandleFunc(routepath.ProfilePrefix, h.WriteNotFound)
}

package admin

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppAdminUsers, h.handleUsers)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppAdminUserTogglePat, h.handleToggle)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppAdminUserDeletePat, h.handleDelete)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppAdminUserRolePat, h.handleRole)
	mux.HandleFunc(routepath.AdminPrefix, h.WriteNotFound)
}

package publicauth

import (
	"net/http"

	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.Register, h.handleRegisterPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Register, h.handleRegister)
	mux.HandleFunc(http.MethodGet+" "+routepath.ForgotPassword, h.handleForgotPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.ForgotPassword, h.handleForgot)
	mux.HandleFunc(http.MethodGet+" "+routepath.ResetPassword, h.handleResetPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.ResetPassword, h.handleReset)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
}

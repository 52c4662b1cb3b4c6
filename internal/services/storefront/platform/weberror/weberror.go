// Package weberror renders shared error pages for storefront modules.
package weberror

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	sfi18n "github.com/louisbranch/storefront/internal/services/storefront/platform/i18n"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/pagerender"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sfi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	if msg := apperrors.PublicMessage(err); msg != "" {
		return msg
	}
	return statusMessage(loc, apperrors.HTTPStatus(err))
}

func statusMessage(loc sfi18n.Localizer, statusCode int) string {
	if loc == nil {
		return http.StatusText(statusCode)
	}
	return loc.Sprintf("errors.status." + strconv.Itoa(knownStatus(statusCode)) + ".message")
}

func knownStatus(statusCode int) int {
	switch statusCode {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusConflict, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}

// WriteAppError writes a localized error page with statusCode.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	writeErrorPage(w, r, statusCode, "", resolver)
}

func writeErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, message string, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	page := pagerender.PageContext(r, resolver)
	known := strconv.Itoa(knownStatus(statusCode))
	heading := page.T("errors.status." + known + ".title")
	if message == "" {
		message = page.T("errors.status." + known + ".message")
	}
	fragment := templates.ErrorPage(templates.ErrorView{
		PageContext: page,
		Status:      statusCode,
		Heading:     heading,
		Message:     message,
	})
	if err := pagerender.WritePage(w, r, resolver, pagerender.Page{Title: heading, StatusCode: statusCode, Fragment: fragment}); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a localized error page for err.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	message := ""
	if statusCode < http.StatusInternalServerError {
		message = PublicMessage(pagerender.PageContext(r, resolver).Loc, err)
	}
	writeErrorPage(w, r, statusCode, message, resolver)
}

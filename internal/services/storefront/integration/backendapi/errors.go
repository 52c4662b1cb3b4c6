package backendapi

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/tidwall/gjson"
)

const maxPlainMessage = 200

// statusError maps a non-2xx backend status to a typed application error.
// 401 and 403 mean the session token is no longer accepted.
func statusError(operation string, status int, body []byte) error {
	cause := fmt.Errorf("%s: backend status %d", operation, status)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Error{Kind: apperrors.KindUnauthorized, Key: "errors.session_expired", Cause: cause}
	case http.StatusNotFound:
		return apperrors.Error{Kind: apperrors.KindNotFound, Cause: cause}
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		message := backendMessage(body)
		if message == "" {
			return apperrors.Error{Kind: apperrors.KindInvalidInput, Key: "errors.backend_rejected", Cause: cause}
		}
		return apperrors.Error{Kind: apperrors.KindInvalidInput, Message: message, Cause: cause}
	default:
		return apperrors.Error{Kind: apperrors.KindUnavailable, Key: "errors.backend_unavailable", Cause: cause}
	}
}

// backendMessage extracts a user-facing message from an error body: the
// message or error field of a JSON object, or a short plain-text body.
func backendMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	if gjson.Valid(text) {
		parsed := gjson.Parse(text)
		if !parsed.IsObject() {
			if parsed.Type == gjson.String {
				return strings.TrimSpace(parsed.String())
			}
			return ""
		}
		return firstString(parsed, "message", "Message", "error", "Error", "detail")
	}
	if len(text) > maxPlainMessage || strings.ContainsAny(text, "<>") {
		return ""
	}
	return text
}

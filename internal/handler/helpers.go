package handler

import (
	"errors"
	"net/http"

	"datavisor/internal/domain"
	"datavisor/internal/httputil"
)

// handleError converts domain errors to RFC 7807 responses
func handleError(w http.ResponseWriter, err error) {
	var (
		tooLarge *domain.TooLargeError
		httpErr  domain.HTTPError
	)

	switch {
	case errors.As(err, &tooLarge):
		httputil.RespondErrorWithExtras(w, tooLarge.StatusCode(), err.Error(), map[string]interface{}{
			"limit_bytes": tooLarge.Limit,
		})
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// PathParam reads a required path parameter and writes a 400 when it is
// missing.
func PathParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	value := r.PathValue(name)
	if value == "" {
		httputil.RespondError(w, http.StatusBadRequest, label+" is required")
		return "", false
	}
	return value, true
}

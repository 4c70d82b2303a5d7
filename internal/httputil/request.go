package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"datavisor/internal/config"
	"datavisor/internal/domain"
)

// ParseJSON decodes JSON from the request body into the given destination.
// The body is limited to config.MaxRequestBytes; a larger body yields a
// domain.TooLargeError, anything undecodable a domain.ValidationError.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &domain.TooLargeError{Limit: int(tooLarge.Limit)}
		}
		return &domain.ValidationError{Message: fmt.Sprintf("invalid JSON: %v", err)}
	}

	return nil
}

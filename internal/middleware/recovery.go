package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"datavisor/internal/httputil"
)

// Recovery turns a handler panic into a 500 problem document carrying the
// request id. http.ErrAbortHandler is re-raised so net/http can drop the
// connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				requestID := httputil.GetRequestID(r)
				logger.Error("handler panicked",
					"panic", rec,
					"request_id", requestID,
					"route", r.Method+" "+r.URL.Path,
					"stack", string(debug.Stack()),
				)

				var extras map[string]interface{}
				if requestID != "" {
					extras = map[string]interface{}{"request_id": requestID}
				}
				httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "internal server error", extras)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Atik203/Logs-Dashboard/pkg/ctxutil"
)

// RequestID tags every request with an id, honoring an incoming
// X-Request-Id header so ids survive proxies. The id goes into the
// context for log correlation and is echoed back in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

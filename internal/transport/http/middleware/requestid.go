package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-inbox-api/internal/pkg/id"
)

const requestIDHeader = "X-Request-Id"

// RequestID attaches a ULID to every request, honoring an id supplied by the
// client. The id is stored under chi's request-id key so the request logger
// picks it up, and echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = id.New()
		}
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, rid)
		w.Header().Set(requestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

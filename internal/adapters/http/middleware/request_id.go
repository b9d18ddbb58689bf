package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ore-roller/internal/platform/httpclient"
)

// requestIDKey is the middleware's own context key; httpclient keeps a
// separate one for outbound propagation.
type requestIDKey struct{}

// WithRequestID stores id in ctx for handlers and for outbound host calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "" if none is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that reuses an incoming X-Request-ID or
// generates a UUID v4, stores it in the context and echoes it back.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(httpclient.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

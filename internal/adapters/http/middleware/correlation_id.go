package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/ore-roller/internal/platform/httpclient"
)

type correlationIDKey struct{}

// WithCorrelationID stores id in ctx for handlers and for outbound host
// calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is
// stored.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// CorrelationID returns middleware that reuses an incoming X-Correlation-ID
// and falls back to the request ID. It must run after RequestID.
//
// A host that forwards one chat event to several extensions sets the same
// correlation ID on each call, so an /ore roll can be traced across them.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderCorrelationID)
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(httpclient.HeaderCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/startup-scorer/internal/platform/httpclient"
)

const headerCorrelationID = "X-Correlation-ID"

// correlationIDKey is the context key for storing correlation IDs.
type correlationIDKey struct{}

// WithCorrelationID stores id in ctx for both the request logger and the
// outbound httpclient, which forwards it as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	ctx = httpclient.WithCorrelationID(ctx, id)
	return ctx
}

// CorrelationIDFromContext returns the stored correlation ID or "".
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// CorrelationID propagates X-Correlation-ID. A caller-supplied value is
// kept when it is printable ASCII of bounded length; otherwise the request
// ID stands in. The ID is echoed in the response and attached to outbound
// Hunter calls through the context. Install it after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !validRequestID(id) {
				id = RequestIDFromContext(r.Context())
			}
			if id != "" {
				w.Header().Set(headerCorrelationID, id)
			}
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}

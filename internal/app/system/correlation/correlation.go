// internal/app/system/correlation/correlation.go

// Package correlation propagates a request-scoped correlation id through
// the call chain as an explicit context value. The id is taken from the
// X-Correlation-ID request header when the caller supplies one, otherwise
// generated, and always echoed on the response so clients can quote it.
package correlation

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Header is the wire name of the correlation id.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// FromContext returns the correlation id carried by ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithID returns a child context carrying the given correlation id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Field returns a zap field for the correlation id in ctx. Handlers attach
// it to every log line so a request can be traced across packages.
func Field(ctx context.Context) zap.Field {
	return zap.String("correlation_id", FromContext(ctx))
}

// Middleware assigns each request a correlation id and echoes it back.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/logger"
)

// SessionHeader carries the opaque cart session token. The storefront
// echoes it back on every request; a missing or malformed token gets a
// fresh one minted so anonymous shoppers always land on their own cart.
const SessionHeader = "X-Cart-Session"

type sessionContextKey struct{}

func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeader)
			if _, err := uuid.Parse(token); err != nil {
				token = uuid.NewString()
			}

			w.Header().Set(SessionHeader, token)

			ctx := context.WithValue(r.Context(), sessionContextKey{}, token)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the cart session token minted or echoed by
// CartSession, or "" when the middleware did not run.
func SessionFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(sessionContextKey{}).(string); ok {
		return token
	}
	return ""
}

// internal/api/middleware/timeout.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Timeout cancels the request context after timeout. If the handler returns
// past the deadline without having written a response, a JSON 504 is sent.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
					ww.Header().Set("Content-Type", "application/json")
					ww.WriteHeader(http.StatusGatewayTimeout)
					_, _ = ww.Write([]byte(`{"error":"La solicitud excedió el tiempo de espera"}`))
				}
				cancel()
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}

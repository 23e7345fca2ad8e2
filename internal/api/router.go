// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"usuarios-api/internal/api/handler"
	"usuarios-api/internal/api/middleware"
)

// RouterOptions tunes the cross-cutting middleware.
type RouterOptions struct {
	RequestTimeout time.Duration
	RateLimiter    *middleware.IPRateLimiter // nil disables rate limiting
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	userHandler *handler.UserHandler,
	greetingHandler *handler.GreetingHandler,
	healthHandler *handler.HealthHandler,
	logger *slog.Logger,
	opts RouterOptions,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	r.Get("/", greetingHandler.Index)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/saludo", greetingHandler.Greeting)

		r.Route("/usuarios", func(r chi.Router) {
			if opts.RateLimiter != nil {
				r.Use(opts.RateLimiter.Handler)
			}
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
		})
	})

	return r
}

package server

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"infix-postfix/internal/converter"
	"infix-postfix/internal/handlers"
	"infix-postfix/internal/observability"
	"infix-postfix/internal/static"
)

// NewRouter wires the API and serves the front end from assets for every
// other path.
func NewRouter(assets fs.FS) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	converter.RegisterRoutes(r)

	r.Handle("/*", static.NewHandler(assets))

	return r
}

package converter

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all converter endpoints onto the given router
// under the /api prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", Convert)
		r.Post("/validate", Validate)
		r.Get("/examples", Examples)
	})
}

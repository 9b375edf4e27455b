package server

import "github.com/go-chi/chi/v5"

// SetupRoutes registers the service routes.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get("/healthz", h.Healthz)
	router.Post("/translate", h.Translate)
	router.Post("/check", h.Check)

	router.Route("/runs", func(r chi.Router) {
		r.Get("/latest", h.LatestRun)
		r.Get("/events", h.RunStream)
		r.Get("/{id}", h.Run)
	})
}

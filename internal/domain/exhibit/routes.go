package exhibit

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns exhibit router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/sessions", h.Create)

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Get("/view", h.View)
		r.Put("/category", h.SetCategory)
		r.Post("/spotlight", h.OpenSpotlight)
		r.Delete("/spotlight", h.CloseSpotlight)
		r.Put("/spotlight/query", h.Reconcile)
	})

	return r
}

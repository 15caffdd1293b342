package catalog

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns catalog router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/home", h.Home)
	r.Get("/hero", h.Hero)
	r.Get("/featured", h.Featured)
	r.Get("/picker", h.Picker)
	r.Get("/series", h.Series)
	r.Get("/series/{series}", h.BySeries)
	r.Get("/{id}", h.GetByID)

	return r
}

package wall

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns wall router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/config", h.Config)
	r.Post("/plan", h.Plan)

	return r
}

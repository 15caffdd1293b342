package design

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns design session router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/sessions", h.Create)

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Delete)
		r.Get("/plan", h.Plan)
		r.Get("/ws", h.WebSocket)

		r.Post("/photos", h.PickPhoto)
		r.Post("/drop", h.Drop)

		r.Post("/slots/{index}/select", h.SelectSlot)
		r.Delete("/slots/{index}", h.ClearSlot)
		r.Delete("/slots", h.ClearLayout)

		r.Put("/layout", h.SetLayout)
		r.Put("/environment", h.SetEnvironment)
		r.Put("/frame", h.SetFrame)
		r.Put("/mat", h.SetMat)
		r.Put("/viewport", h.Resize)

		r.Post("/drag", h.StartDrag)
		r.Delete("/drag", h.EndDrag)

		r.Post("/step/next", h.NextStep)
		r.Post("/step/prev", h.PrevStep)
	})

	return r
}

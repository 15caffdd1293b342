package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
	"github.com/lumengallery/lumen-api/internal/pkg/response"
	"github.com/lumengallery/lumen-api/internal/pkg/validator"
)

// Handler handles catalog HTTP requests
type Handler struct {
	service  *Service
	resolver *imagecdn.Resolver
}

// NewHandler creates catalog handler
func NewHandler(service *Service, resolver *imagecdn.Resolver) *Handler {
	return &Handler{service: service, resolver: resolver}
}

// List handles GET /photos?category=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		grouped := h.service.GroupedCards()
		out := make(map[Category][]*CardResponse, len(grouped))
		for c, cards := range grouped {
			out[c] = CardResponsesFrom(cards, h.resolver)
		}
		response.OK(w, out)
		return
	}

	if err := validator.ValidateVar(category, "category"); err != nil {
		response.BadRequest(w, "Invalid category")
		return
	}

	cards := h.service.CardsByCategory(Category(category))
	response.OK(w, CardResponsesFrom(cards, h.resolver))
}

// Picker handles GET /photos/picker — category groups in the order the
// gallery photo picker presents them
func (h *Handler) Picker(w http.ResponseWriter, r *http.Request) {
	groups := make([]CategoryGroupResponse, 0, len(PickerCategories()))
	for _, c := range PickerCategories() {
		groups = append(groups, CategoryGroupResponse{
			Category: c,
			Photos:   CardResponsesFrom(h.service.CardsByCategory(c), h.resolver),
		})
	}
	response.OK(w, groups)
}

// GetByID handles GET /photos/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail := h.service.DetailByID(id)
	if detail == nil {
		response.NotFound(w, "Photo not found")
		return
	}

	response.OK(w, DetailResponseFrom(*detail, h.resolver))
}

// Featured handles GET /photos/featured
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	photos := h.service.Featured()
	cards := make([]Card, len(photos))
	for i := range photos {
		cards[i] = photos[i].ToCard()
	}
	response.OK(w, CardResponsesFrom(cards, h.resolver))
}

// Series handles GET /photos/series
func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	series := h.service.AllSeries()
	if series == nil {
		series = []string{}
	}
	response.OK(w, series)
}

// BySeries handles GET /photos/series/{series}
func (h *Handler) BySeries(w http.ResponseWriter, r *http.Request) {
	series := chi.URLParam(r, "series")

	photos := h.service.BySeries(series)
	cards := make([]Card, len(photos))
	for i := range photos {
		cards[i] = photos[i].ToCard()
	}
	response.OK(w, CardResponsesFrom(cards, h.resolver))
}

// Home handles GET /photos/home?limit= — the curated landing-page selection
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	limit := 18
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		limit = parsed
	}

	cards := h.service.HomeCurationCards(limit)
	response.OK(w, CardResponsesFrom(cards, h.resolver))
}

// Hero handles GET /photos/hero
func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	hero := h.service.HeroPhoto()
	if hero == nil {
		response.OK(w, nil)
		return
	}
	response.OK(w, CardResponseFrom(hero.ToCard(), h.resolver))
}

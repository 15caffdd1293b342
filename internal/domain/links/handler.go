package links

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumengallery/lumen-api/internal/pkg/response"
)

// Link is one external destination on the links page
type Link struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// PageResponse is the links page view model
type PageResponse struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Links      []Link `json:"links"`
}

// Handler handles links page HTTP requests
type Handler struct {
	shopURL string
}

// NewHandler creates links handler. shopURL is the site-wide storefront.
func NewHandler(shopURL string) *Handler {
	return &Handler{shopURL: shopURL}
}

// List handles GET /links
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, PageResponse{
		Heading:    "Connect",
		Subheading: "Follow the journey or collect a piece of it.",
		Links: []Link{
			{
				ID:          "etsy",
				Title:       "Etsy Shop",
				Description: "Purchase archival prints",
				URL:         h.shopURL,
			},
			{
				ID:          "instagram",
				Title:       "Instagram",
				Description: "Follow me for daily updates",
				URL:         "https://instagram.com/lumengallery",
			},
		},
	})
}

// Routes returns links routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

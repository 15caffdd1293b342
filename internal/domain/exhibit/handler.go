package exhibit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
	"github.com/lumengallery/lumen-api/internal/pkg/response"
	"github.com/lumengallery/lumen-api/internal/pkg/validator"
)

// Handler handles exhibit HTTP requests
type Handler struct {
	service  *Service
	catalog  *catalog.Service
	resolver *imagecdn.Resolver
}

// NewHandler creates exhibit handler
func NewHandler(service *Service, catalogService *catalog.Service, resolver *imagecdn.Resolver) *Handler {
	return &Handler{service: service, catalog: catalogService, resolver: resolver}
}

// Create handles POST /exhibit/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	session := h.service.Create()
	response.Created(w, SessionResponseFrom(session))
}

// Get handles GET /exhibit/sessions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// View handles GET /exhibit/sessions/{id}/view — the full page view model
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	groups := make([]catalog.CategoryGroupResponse, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		groups = append(groups, catalog.CategoryGroupResponse{
			Category: c,
			Photos:   catalog.CardResponsesFrom(h.catalog.CardsByCategory(c), h.resolver),
		})
	}

	view := ViewResponse{
		Categories: catalog.Categories(),
		Groups:     groups,
		Session:    SessionResponseFrom(session),
	}
	if session.PhotoID != "" {
		if detail := h.catalog.DetailByID(session.PhotoID); detail != nil {
			view.Spotlight = catalog.DetailResponseFrom(*detail, h.resolver)
		}
	}

	response.OK(w, view)
}

// SetCategory handles PUT /exhibit/sessions/{id}/category
func (h *Handler) SetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SetCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.SetCategory(id, catalog.Category(req.Category))
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// OpenSpotlight handles POST /exhibit/sessions/{id}/spotlight
func (h *Handler) OpenSpotlight(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req OpenSpotlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.OpenSpotlight(id, req.PhotoID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// CloseSpotlight handles DELETE /exhibit/sessions/{id}/spotlight
func (h *Handler) CloseSpotlight(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.CloseSpotlight(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// Reconcile handles PUT /exhibit/sessions/{id}/spotlight/query
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	session, err := h.service.Reconcile(id, req.PhotoID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.NotFound(w, "Session not found")
	case errors.Is(err, ErrPhotoNotFound):
		response.NotFound(w, "Photo not found")
	default:
		response.InternalError(w, "Something went wrong")
	}
}

package assets

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lumengallery/lumen-api/internal/pkg/imaging"
	"github.com/lumengallery/lumen-api/internal/pkg/response"
	"github.com/lumengallery/lumen-api/internal/pkg/storage"
)

// Handler serves local-fallback photo files from the asset store, capped
// through the downscaler so an oversized origin image never reaches a
// client at full size.
type Handler struct {
	store      storage.AssetStore
	downscaler *imaging.Downscaler
}

// NewHandler creates assets handler
func NewHandler(store storage.AssetStore, downscaler *imaging.Downscaler) *Handler {
	return &Handler{store: store, downscaler: downscaler}
}

// Serve handles GET /assets/* with an optional ?w= width hint
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		response.NotFound(w, "Asset not found")
		return
	}

	width := 0
	if raw := r.URL.Query().Get("w"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid width")
			return
		}
		width = parsed
	}

	if exists, err := h.store.Exists(r.Context(), key); err != nil || !exists {
		response.NotFound(w, "Asset not found")
		return
	}

	reader, err := h.store.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			response.NotFound(w, "Asset not found")
			return
		}
		log.Error().Err(err).Str("key", key).Msg("Asset open failed")
		response.InternalError(w, "Failed to read asset")
		return
	}
	defer reader.Close()

	result, err := h.downscaler.Downscale(reader, width)
	if err != nil {
		// Not an image we can decode; hand the bytes through untouched
		contentType, ctErr := h.store.ContentType(r.Context(), key)
		if ctErr != nil {
			contentType = "application/octet-stream"
		}
		raw, openErr := h.store.Open(r.Context(), key)
		if openErr != nil {
			response.InternalError(w, "Failed to read asset")
			return
		}
		defer raw.Close()

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		io.Copy(w, raw)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}

// Routes returns assets router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/*", h.Serve)

	return r
}

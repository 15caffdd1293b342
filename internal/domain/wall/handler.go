package wall

import (
	"encoding/json"
	"net/http"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/pkg/response"
	"github.com/lumengallery/lumen-api/internal/pkg/validator"
)

// Handler handles wall configurator HTTP requests
type Handler struct {
	service *Service
	catalog *catalog.Service
}

// NewHandler creates wall handler
func NewHandler(service *Service, catalogService *catalog.Service) *Handler {
	return &Handler{service: service, catalog: catalogService}
}

// Config handles GET /wall/config
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	envs := make([]EnvironmentInfo, 0, len(Environments()))
	for _, env := range Environments() {
		envs = append(envs, EnvironmentInfo{
			ID:            env,
			Label:         EnvironmentLabel(env),
			BackgroundURL: h.service.BackgroundURL(env),
			Zone:          SafeZone(env, "", ""),
		})
	}

	layouts := make([]LayoutInfo, 0, len(Layouts()))
	for _, layout := range Layouts() {
		layouts = append(layouts, LayoutInfo{
			ID:          layout,
			Label:       LayoutLabel(layout),
			SlotCount:   SlotCount(layout),
			Arrangement: Arrangement(layout),
		})
	}

	frames := make([]FrameInfo, 0, len(FrameStyles()))
	for _, style := range FrameStyles() {
		frames = append(frames, FrameInfo{
			ID:          style,
			Full:        FrameSpecFor(style, false),
			Performance: FrameSpecFor(style, true),
		})
	}

	mats := []MatInfo{
		{ID: MatNone, Spec: MatSpecFor(MatNone)},
		{ID: MatWhite, Spec: MatSpecFor(MatWhite)},
	}

	response.OK(w, ConfigResponse{
		CanvasWidth:  BaseWidth,
		CanvasHeight: BaseHeight,
		Environments: envs,
		Layouts:      layouts,
		Frames:       frames,
		Mats:         mats,
	})
}

// Plan handles POST /wall/plan
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	in := PlanInput{
		Environment:     Environment(req.Environment),
		Layout:          Layout(req.Layout),
		FrameStyle:      FrameStyle(req.FrameStyle),
		MatOption:       MatOption(req.MatOption),
		ActiveSlot:      req.ActiveSlot,
		ViewportWidth:   req.ViewportWidth,
		ViewportHeight:  req.ViewportHeight,
		PerformanceMode: req.PerformanceMode,
	}
	for i, id := range req.Slots {
		if i >= MaxSlots || id == "" {
			continue
		}
		if photo := h.catalog.ByID(id); photo != nil {
			card := photo.ToCard()
			in.Slots[i] = &card
		}
	}

	response.OK(w, h.service.BuildPlan(in))
}

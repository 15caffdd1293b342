package wall

import (
	"math"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
)

// Zoom returns the scale factor that makes the 2400x1600 room cover a
// viewport, the same way cover background sizing works: the scaled room is
// never smaller than the viewport on either axis.
func Zoom(viewportWidth, viewportHeight float64) float64 {
	zoom := math.Max(viewportWidth/BaseWidth, viewportHeight/BaseHeight)
	// The division can round down, leaving the scaled room one ulp short of
	// the viewport on the axis that chose the max; bump until it covers.
	for BaseWidth*zoom < viewportWidth || BaseHeight*zoom < viewportHeight {
		zoom = math.Nextafter(zoom, math.Inf(1))
	}
	return zoom
}

// Placement positions the scaled room over a viewport
type Placement struct {
	Zoom    float64 `json:"zoom"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// Place computes the cover zoom and the centering offsets for a viewport.
// Offsets are non-positive: the room overhangs the viewport on the axis it
// exceeds.
func Place(viewportWidth, viewportHeight float64) Placement {
	zoom := Zoom(viewportWidth, viewportHeight)
	return Placement{
		Zoom:    zoom,
		OffsetX: (viewportWidth - BaseWidth*zoom) / 2,
		OffsetY: (viewportHeight - BaseHeight*zoom) / 2,
	}
}

// PlanInput is everything the configurator needs to produce a render plan
type PlanInput struct {
	Environment     Environment
	Layout          Layout
	FrameStyle      FrameStyle
	MatOption       MatOption
	Slots           [MaxSlots]*catalog.Card
	ActiveSlot      int
	ViewportWidth   float64
	ViewportHeight  float64
	PerformanceMode bool
}

// SlotPlan is one rendered slot position. Occupied slots carry the photo
// card and its native aspect ratio; empty slots are placeholder drop
// targets.
type SlotPlan struct {
	Index       int                   `json:"index"`
	Span        string                `json:"span,omitempty"`
	Active      bool                  `json:"active"`
	Occupied    bool                  `json:"occupied"`
	AspectRatio float64               `json:"aspect_ratio,omitempty"`
	Photo       *catalog.CardResponse `json:"photo,omitempty"`
	DropTarget  string                `json:"drop_target"`
}

// Plan is the full render plan for one configurator state: where the room
// sits over the viewport, where the safe zone sits in the room, and what
// each visible slot renders.
type Plan struct {
	Environment   Environment     `json:"environment"`
	Layout        Layout          `json:"layout"`
	BackgroundURL string          `json:"background_url"`
	Placement     Placement       `json:"placement"`
	Zone          Zone            `json:"zone"`
	Transform     Transform       `json:"transform"`
	Arrangement   GridArrangement `json:"arrangement"`
	Frame         FrameSpec       `json:"frame"`
	Mat           MatSpec         `json:"mat"`
	ActiveSlot    int             `json:"active_slot"`
	Slots         []SlotPlan      `json:"slots"`
}

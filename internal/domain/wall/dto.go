package wall

// PlanRequest asks for a render plan of one configurator state. Slots carry
// photo ids; an empty string is an empty slot. Unknown photo ids render as
// empty slots, matching the missing-data policy.
type PlanRequest struct {
	Environment     string   `json:"environment" validate:"required,environment"`
	Layout          string   `json:"layout" validate:"required,layout"`
	FrameStyle      string   `json:"frame_style" validate:"required,frame_style"`
	MatOption       string   `json:"mat_option" validate:"required,mat_option"`
	Slots           []string `json:"slots" validate:"max=9"`
	ActiveSlot      int      `json:"active_slot" validate:"gte=0,lte=8"`
	ViewportWidth   float64  `json:"viewport_width" validate:"required,gt=0"`
	ViewportHeight  float64  `json:"viewport_height" validate:"required,gt=0"`
	PerformanceMode bool     `json:"performance_mode"`
}

// EnvironmentInfo describes one selectable environment
type EnvironmentInfo struct {
	ID            Environment `json:"id"`
	Label         string      `json:"label"`
	BackgroundURL string      `json:"background_url"`
	Zone          Zone        `json:"zone"`
}

// LayoutInfo describes one selectable layout template
type LayoutInfo struct {
	ID          Layout          `json:"id"`
	Label       string          `json:"label"`
	SlotCount   int             `json:"slot_count"`
	Arrangement GridArrangement `json:"arrangement"`
}

// FrameInfo carries both fidelity tiers for one frame style
type FrameInfo struct {
	ID          FrameStyle `json:"id"`
	Full        FrameSpec  `json:"full"`
	Performance FrameSpec  `json:"performance"`
}

// MatInfo describes one mat option
type MatInfo struct {
	ID   MatOption `json:"id"`
	Spec MatSpec   `json:"spec"`
}

// ConfigResponse is the static configurator vocabulary: everything a client
// needs to draw the toolbars before any session exists.
type ConfigResponse struct {
	CanvasWidth  float64           `json:"canvas_width"`
	CanvasHeight float64           `json:"canvas_height"`
	Environments []EnvironmentInfo `json:"environments"`
	Layouts      []LayoutInfo      `json:"layouts"`
	Frames       []FrameInfo       `json:"frames"`
	Mats         []MatInfo         `json:"mats"`
}

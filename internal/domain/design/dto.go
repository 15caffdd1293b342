package design

// CreateSessionRequest opens a new design session
type CreateSessionRequest struct {
	ViewportWidth  float64 `json:"viewport_width" validate:"required,gt=0"`
	ViewportHeight float64 `json:"viewport_height" validate:"required,gt=0"`
}

// PickPhotoRequest assigns a photo to the active slot
type PickPhotoRequest struct {
	PhotoID string `json:"photo_id" validate:"required"`
}

// DropRequest places a dragged photo. Slot targets an exact index; nil
// means the drop landed on the general canvas.
type DropRequest struct {
	PhotoID string `json:"photo_id" validate:"required"`
	Slot    *int   `json:"slot,omitempty" validate:"omitempty,gte=0,lte=8"`
}

// SetLayoutRequest switches the layout template
type SetLayoutRequest struct {
	Layout string `json:"layout" validate:"required,layout"`
}

// SetEnvironmentRequest switches the room background
type SetEnvironmentRequest struct {
	Environment string `json:"environment" validate:"required,environment"`
}

// SetFrameRequest switches the frame style
type SetFrameRequest struct {
	FrameStyle string `json:"frame_style" validate:"required,frame_style"`
}

// SetMatRequest switches the mat option
type SetMatRequest struct {
	MatOption string `json:"mat_option" validate:"required,mat_option"`
}

// ResizeRequest reports new viewport dimensions
type ResizeRequest struct {
	ViewportWidth  float64 `json:"viewport_width" validate:"required,gt=0"`
	ViewportHeight float64 `json:"viewport_height" validate:"required,gt=0"`
}

// StartDragRequest begins a drag gesture
type StartDragRequest struct {
	PhotoID string `json:"photo_id" validate:"required"`
}

// SlotResponse is one slot in a session snapshot
type SlotResponse struct {
	Index   int    `json:"index"`
	PhotoID string `json:"photo_id,omitempty"`
	Visible bool   `json:"visible"`
	Active  bool   `json:"active"`
}

// MobileStepResponse describes the current guided-flow position
type MobileStepResponse struct {
	Step    MobileStep   `json:"step"`
	Index   int          `json:"index"`
	Total   int          `json:"total"`
	Copy    string       `json:"copy"`
	HasNext bool         `json:"has_next"`
	HasPrev bool         `json:"has_prev"`
	Steps   []MobileStep `json:"steps"`
}

// SessionResponse is the full session snapshot sent to clients
type SessionResponse struct {
	ID             string             `json:"id"`
	Environment    string             `json:"environment"`
	Layout         string             `json:"layout"`
	FrameStyle     string             `json:"frame_style"`
	MatOption      string             `json:"mat_option"`
	Slots          []SlotResponse     `json:"slots"`
	ActiveSlot     int                `json:"active_slot"`
	VisibleSlots   int                `json:"visible_slots"`
	ViewportWidth  float64            `json:"viewport_width"`
	ViewportHeight float64            `json:"viewport_height"`
	ViewMode       ViewMode           `json:"view_mode"`
	MobileStep     MobileStepResponse `json:"mobile_step"`
	Drag           DragState          `json:"drag"`
}

// SessionResponseFrom projects a session for transport
func SessionResponseFrom(session *Session) *SessionResponse {
	visible := session.VisibleSlotCount()

	slots := make([]SlotResponse, len(session.Slots))
	for i, card := range session.Slots {
		slots[i] = SlotResponse{
			Index:   i,
			Visible: i < visible,
			Active:  i == session.ActiveSlot,
		}
		if card != nil {
			slots[i].PhotoID = card.ID
		}
	}

	idx := stepIndex(session.MobileStep)
	steps := MobileSteps()

	return &SessionResponse{
		ID:             session.ID.String(),
		Environment:    string(session.Environment),
		Layout:         string(session.Layout),
		FrameStyle:     string(session.FrameStyle),
		MatOption:      string(session.MatOption),
		Slots:          slots,
		ActiveSlot:     session.ActiveSlot,
		VisibleSlots:   visible,
		ViewportWidth:  session.ViewportWidth,
		ViewportHeight: session.ViewportHeight,
		ViewMode:       session.ViewMode,
		MobileStep: MobileStepResponse{
			Step:    session.MobileStep,
			Index:   idx,
			Total:   len(steps),
			Copy:    StepCopy(session.MobileStep),
			HasNext: idx < len(steps)-1,
			HasPrev: idx > 0,
			Steps:   steps,
		},
		Drag: session.Drag,
	}
}

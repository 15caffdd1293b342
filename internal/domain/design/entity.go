package design

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/domain/wall"
)

// MobileBreakpoint is the viewport width below which the three-panel
// desktop layout cannot fit and the guided step flow takes over.
const MobileBreakpoint = 1024

// ViewMode is the controller's layout mode, a pure function of viewport
// width.
type ViewMode string

const (
	ViewModeDesktop ViewMode = "desktop"
	ViewModeMobile  ViewMode = "mobile-guided"
)

// ViewModeFor returns the view mode for a viewport width
func ViewModeFor(width float64) ViewMode {
	if width < MobileBreakpoint {
		return ViewModeMobile
	}
	return ViewModeDesktop
}

// MobileStep is one stage of the guided mobile flow
type MobileStep string

const (
	StepPhoto       MobileStep = "photo"
	StepEnvironment MobileStep = "environment"
	StepLayout      MobileStep = "layout"
	StepStyle       MobileStep = "style"
	StepPurchase    MobileStep = "purchase"
)

// MobileSteps returns the guided flow in order
func MobileSteps() []MobileStep {
	return []MobileStep{StepPhoto, StepEnvironment, StepLayout, StepStyle, StepPurchase}
}

// StepCopy returns the helper text shown under a step's heading
func StepCopy(step MobileStep) string {
	switch step {
	case StepPhoto:
		return "Pick a photo and place it in the active slot."
	case StepEnvironment:
		return "Choose a room to preview your print placement."
	case StepLayout:
		return "Select a wall layout that fits your space."
	case StepStyle:
		return "Fine-tune frame and mat options."
	case StepPurchase:
		return "Review your selection and continue to checkout."
	default:
		return ""
	}
}

func stepIndex(step MobileStep) int {
	for i, s := range MobileSteps() {
		if s == step {
			return i
		}
	}
	return 0
}

// DragState tracks the single in-flight drag gesture. Only one gesture can
// be active at a time.
type DragState struct {
	Active  bool   `json:"active"`
	PhotoID string `json:"photo_id,omitempty"`
}

// Session is one visitor's wall design in progress. Mutated only through
// the service; everything handed out is a copy.
type Session struct {
	ID             uuid.UUID                    `json:"id"`
	Environment    wall.Environment             `json:"environment"`
	Layout         wall.Layout                  `json:"layout"`
	FrameStyle     wall.FrameStyle              `json:"frame_style"`
	MatOption      wall.MatOption               `json:"mat_option"`
	Slots          [wall.MaxSlots]*catalog.Card `json:"slots"`
	ActiveSlot     int                          `json:"active_slot"`
	ViewportWidth  float64                      `json:"viewport_width"`
	ViewportHeight float64                      `json:"viewport_height"`
	ViewMode       ViewMode                     `json:"view_mode"`
	MobileStep     MobileStep                   `json:"mobile_step"`
	Drag           DragState                    `json:"drag"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

// NewSession creates a session with the default configurator state
func NewSession(viewportWidth, viewportHeight float64) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Environment:    wall.EnvironmentHome,
		Layout:         wall.LayoutSingle,
		FrameStyle:     wall.FrameThinBlack,
		MatOption:      wall.MatWhite,
		ActiveSlot:     0,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		ViewMode:       ViewModeFor(viewportWidth),
		MobileStep:     StepPhoto,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// VisibleSlotCount returns the slot count of the current layout
func (s *Session) VisibleSlotCount() int {
	return wall.SlotCount(s.Layout)
}

// Clone returns a deep copy. Card values are copied so callers can never
// reach back into the stored session.
func (s *Session) Clone() *Session {
	copied := *s
	for i, card := range s.Slots {
		if card != nil {
			c := *card
			copied.Slots[i] = &c
		}
	}
	return &copied
}

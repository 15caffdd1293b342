package exhibit

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
)

// TransitionDuration is the nominal open/close animation length. The
// closing state holds the photo for this long so the exit animation can
// play before the data clears.
const TransitionDuration = 300 * time.Millisecond

// SpotlightState is the full-screen viewer's lifecycle state
type SpotlightState string

const (
	SpotlightClosed  SpotlightState = "closed"
	SpotlightOpening SpotlightState = "opening"
	SpotlightOpen    SpotlightState = "open"
	SpotlightClosing SpotlightState = "closing"
)

// Session is one visitor's exhibit browsing state: the selected category
// tab and the spotlight viewer machine.
type Session struct {
	ID           uuid.UUID
	Category     catalog.Category
	Spotlight    SpotlightState
	PhotoID      string
	ScrollLocked bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// generation fences timer callbacks: an early close or reopen bumps it
	// so a stale transition never fires
	generation uint64
}

// NewSession creates an exhibit session on the first category tab
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Category:  catalog.Categories()[0],
		Spotlight: SpotlightClosed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// QueryParam returns the photo= deep-link value mirroring the spotlight:
// set while the viewer is opening or open, empty otherwise.
func (s *Session) QueryParam() string {
	if s.Spotlight == SpotlightOpening || s.Spotlight == SpotlightOpen {
		return s.PhotoID
	}
	return ""
}

package exhibit

import (
	"github.com/lumengallery/lumen-api/internal/domain/catalog"
)

// SetCategoryRequest switches the category tab
type SetCategoryRequest struct {
	Category string `json:"category" validate:"required,category"`
}

// OpenSpotlightRequest opens the viewer on a photo
type OpenSpotlightRequest struct {
	PhotoID string `json:"photo_id" validate:"required"`
}

// ReconcileRequest reports the current photo= query parameter. An empty
// value means the parameter is absent.
type ReconcileRequest struct {
	PhotoID string `json:"photo_id"`
}

// SessionResponse is the exhibit session snapshot
type SessionResponse struct {
	ID           string           `json:"id"`
	Category     catalog.Category `json:"category"`
	Spotlight    SpotlightState   `json:"spotlight"`
	PhotoID      string           `json:"photo_id,omitempty"`
	ScrollLocked bool             `json:"scroll_locked"`
	QueryParam   string           `json:"query_param"`
}

// SessionResponseFrom projects a session for transport
func SessionResponseFrom(session *Session) *SessionResponse {
	return &SessionResponse{
		ID:           session.ID.String(),
		Category:     session.Category,
		Spotlight:    session.Spotlight,
		PhotoID:      session.PhotoID,
		ScrollLocked: session.ScrollLocked,
		QueryParam:   session.QueryParam(),
	}
}

// ViewResponse is the exhibit page view model: every category's cards plus
// the session and, when the viewer is showing a photo, its purchase detail.
type ViewResponse struct {
	Categories []catalog.Category              `json:"categories"`
	Groups     []catalog.CategoryGroupResponse `json:"groups"`
	Session    *SessionResponse                `json:"session"`
	Spotlight  *catalog.DetailResponse         `json:"spotlight,omitempty"`
}

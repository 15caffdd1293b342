package design

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/domain/wall"
)

// Broadcaster pushes a session snapshot to subscribed observers after every
// applied command.
type Broadcaster interface {
	BroadcastSession(session *Session)
}

// Service owns every mutation of design sessions. Child surfaces express
// intent through these commands and read back copies; nothing else writes
// the slot array.
type Service struct {
	store       *Store
	catalog     *catalog.Service
	wall        *wall.Service
	broadcaster Broadcaster
}

// NewService creates a design session service. broadcaster may be nil.
func NewService(store *Store, catalogService *catalog.Service, wallService *wall.Service, broadcaster Broadcaster) *Service {
	return &Service{
		store:       store,
		catalog:     catalogService,
		wall:        wallService,
		broadcaster: broadcaster,
	}
}

// Create starts a new session sized to the client viewport
func (s *Service) Create(ctx context.Context, viewportWidth, viewportHeight float64) *Session {
	session := NewSession(viewportWidth, viewportHeight)
	s.store.Save(ctx, session)
	return session.Clone()
}

// Get returns a copy of the session
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Get(ctx, id)
}

// Delete discards a session
func (s *Service) Delete(ctx context.Context, id uuid.UUID) {
	s.store.Delete(ctx, id)
}

func (s *Service) apply(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	session, err := s.store.Update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSession(session)
	}
	return session, nil
}

// SelectSlot makes a slot the active one. Any visible slot can be selected,
// occupied or not.
func (s *Service) SelectSlot(ctx context.Context, id uuid.UUID, slot int) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		if slot < 0 || slot >= session.VisibleSlotCount() {
			return ErrInvalidSlot
		}
		session.ActiveSlot = slot
		return nil
	})
}

// PickPhoto assigns a photo to the active slot, then advances the active
// slot to the lowest-index empty visible slot excluding the one just
// filled. When every other visible slot is occupied the active slot stays
// put so re-picking overwrites.
func (s *Service) PickPhoto(ctx context.Context, id uuid.UUID, photoID string) (*Session, error) {
	card, err := s.cardByID(photoID)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, id, func(session *Session) error {
		filled := session.ActiveSlot
		session.Slots[filled] = card

		count := session.VisibleSlotCount()
		for i := 0; i < count; i++ {
			if i != filled && session.Slots[i] == nil {
				session.ActiveSlot = i
				break
			}
		}
		return nil
	})
}

// DropOnSlot assigns a photo to an exact slot index and makes it active
func (s *Service) DropOnSlot(ctx context.Context, id uuid.UUID, slot int, photoID string) (*Session, error) {
	card, err := s.cardByID(photoID)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, id, func(session *Session) error {
		if slot < 0 || slot >= session.VisibleSlotCount() {
			return ErrInvalidSlot
		}
		session.Slots[slot] = card
		session.ActiveSlot = slot
		session.Drag = DragState{}
		return nil
	})
}

// DropOnCanvas handles a drop that missed every slot target: the active
// slot takes the photo if empty; otherwise the first empty visible slot
// takes it and becomes active; otherwise the active slot is overwritten.
func (s *Service) DropOnCanvas(ctx context.Context, id uuid.UUID, photoID string) (*Session, error) {
	card, err := s.cardByID(photoID)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, id, func(session *Session) error {
		session.Drag = DragState{}

		if session.Slots[session.ActiveSlot] == nil {
			session.Slots[session.ActiveSlot] = card
			return nil
		}

		count := session.VisibleSlotCount()
		for i := 0; i < count; i++ {
			if session.Slots[i] == nil {
				session.Slots[i] = card
				session.ActiveSlot = i
				return nil
			}
		}

		session.Slots[session.ActiveSlot] = card
		return nil
	})
}

// ClearSlot empties exactly one slot, leaving the rest untouched
func (s *Service) ClearSlot(ctx context.Context, id uuid.UUID, slot int) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		if slot < 0 || slot >= wall.MaxSlots {
			return ErrInvalidSlot
		}
		session.Slots[slot] = nil
		return nil
	})
}

// ClearLayout empties all slots and resets the active slot
func (s *Service) ClearLayout(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		session.Slots = [wall.MaxSlots]*catalog.Card{}
		session.ActiveSlot = 0
		return nil
	})
}

// SetLayout switches the layout template. Slot contents are retained, even
// beyond the new layout's visible count, so switching back restores them;
// only the active slot resets.
func (s *Service) SetLayout(ctx context.Context, id uuid.UUID, layout wall.Layout) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		session.Layout = layout
		session.ActiveSlot = 0
		return nil
	})
}

// SetEnvironment switches the room background
func (s *Service) SetEnvironment(ctx context.Context, id uuid.UUID, env wall.Environment) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		session.Environment = env
		return nil
	})
}

// SetFrameStyle switches the frame style
func (s *Service) SetFrameStyle(ctx context.Context, id uuid.UUID, style wall.FrameStyle) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		session.FrameStyle = style
		return nil
	})
}

// SetMatOption switches the mat treatment
func (s *Service) SetMatOption(ctx context.Context, id uuid.UUID, mat wall.MatOption) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		session.MatOption = mat
		return nil
	})
}

// Resize records new viewport dimensions and recomputes the view mode.
// Height-only changes are ignored while in mobile mode: mobile browser
// chrome showing and hiding the address bar fires spurious height resizes
// that must not thrash the layout. Drag state is never touched.
func (s *Service) Resize(ctx context.Context, id uuid.UUID, width, height float64) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		if session.ViewMode == ViewModeMobile && width == session.ViewportWidth {
			return nil
		}
		session.ViewportWidth = width
		session.ViewportHeight = height
		session.ViewMode = ViewModeFor(width)
		return nil
	})
}

// StartDrag marks a drag gesture in flight. Only one gesture is tracked.
func (s *Service) StartDrag(ctx context.Context, id uuid.UUID, photoID string) (*Session, error) {
	card, err := s.cardByID(photoID)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, id, func(session *Session) error {
		session.Drag = DragState{Active: true, PhotoID: card.ID}
		return nil
	})
}

// EndDrag clears the drag state without placing anything (drop missed)
func (s *Service) EndDrag(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		session.Drag = DragState{}
		return nil
	})
}

// NextStep advances the mobile guided flow
func (s *Service) NextStep(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		steps := MobileSteps()
		idx := stepIndex(session.MobileStep)
		if idx >= len(steps)-1 {
			return ErrNoStep
		}
		session.MobileStep = steps[idx+1]
		return nil
	})
}

// PrevStep steps the mobile guided flow back
func (s *Service) PrevStep(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.apply(ctx, id, func(session *Session) error {
		idx := stepIndex(session.MobileStep)
		if idx <= 0 {
			return ErrNoStep
		}
		session.MobileStep = MobileSteps()[idx-1]
		return nil
	})
}

// Plan computes the render plan for the session's current state. The
// performance tier is forced while a drag is in flight; callers can also
// request it for constrained devices.
func (s *Service) Plan(ctx context.Context, id uuid.UUID, performanceMode bool) (*wall.Plan, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	plan := s.wall.BuildPlan(wall.PlanInput{
		Environment:     session.Environment,
		Layout:          session.Layout,
		FrameStyle:      session.FrameStyle,
		MatOption:       session.MatOption,
		Slots:           session.Slots,
		ActiveSlot:      session.ActiveSlot,
		ViewportWidth:   session.ViewportWidth,
		ViewportHeight:  session.ViewportHeight,
		PerformanceMode: performanceMode || session.Drag.Active,
	})
	return &plan, nil
}

func (s *Service) cardByID(photoID string) (*catalog.Card, error) {
	photo := s.catalog.ByID(photoID)
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	card := photo.ToCard()
	return &card, nil
}

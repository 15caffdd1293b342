package exhibit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
)

// Service owns exhibit sessions and drives the spotlight state machine.
// Sessions are process-local: they hold live transition timers, so there
// is nothing meaningful to mirror out of process.
type Service struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	touched  map[uuid.UUID]time.Time
	cancels  map[uuid.UUID]func()

	catalog *catalog.Service
	clock   Clock
	ttl     time.Duration

	stop chan struct{}
	once sync.Once
}

// NewService creates an exhibit service
func NewService(catalogService *catalog.Service, clock Clock, ttl time.Duration) *Service {
	return &Service{
		sessions: make(map[uuid.UUID]*Session),
		touched:  make(map[uuid.UUID]time.Time),
		cancels:  make(map[uuid.UUID]func()),
		catalog:  catalogService,
		clock:    clock,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

// StartCleanup evicts idle sessions on an interval (call in goroutine)
func (s *Service) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

// Stop terminates the cleanup loop
func (s *Service) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Service) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, last := range s.touched {
		if last.Before(cutoff) {
			if cancel := s.cancels[id]; cancel != nil {
				cancel()
			}
			delete(s.sessions, id)
			delete(s.touched, id)
			delete(s.cancels, id)
		}
	}
}

// Create starts a new exhibit session
func (s *Service) Create() *Session {
	session := NewSession()

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.touched[session.ID] = time.Now()
	s.mu.Unlock()

	copied := *session
	return &copied
}

// Get returns a copy of the session
func (s *Service) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touched[id] = time.Now()
	copied := *session
	return &copied, nil
}

// SetCategory switches the category tab
func (s *Service) SetCategory(id uuid.UUID, category catalog.Category) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.Category = category
	session.UpdatedAt = time.Now()
	s.touched[id] = time.Now()
	copied := *session
	return &copied, nil
}

// OpenSpotlight opens the viewer on a photo. Scroll is locked for as long
// as the viewer is not closed; reopening mid-close restarts the cycle.
func (s *Service) OpenSpotlight(id uuid.UUID, photoID string) (*Session, error) {
	if s.catalog.ByID(photoID) == nil {
		return nil, ErrPhotoNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.openLocked(id, session, photoID)
	copied := *session
	return &copied, nil
}

func (s *Service) openLocked(id uuid.UUID, session *Session, photoID string) {
	s.cancelTimerLocked(id)
	session.generation++
	session.Spotlight = SpotlightOpening
	session.PhotoID = photoID
	session.ScrollLocked = true
	session.UpdatedAt = time.Now()
	s.touched[id] = time.Now()

	gen := session.generation
	s.cancels[id] = s.clock.AfterFunc(TransitionDuration, func() {
		s.advance(id, gen, SpotlightOpening, SpotlightOpen)
	})
}

// CloseSpotlight begins closing the viewer. The photo stays set through the
// closing state so the exit animation has its data; it clears when the
// transition duration elapses. Closing an already closed viewer is a no-op.
func (s *Service) CloseSpotlight(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.closeLocked(id, session)
	copied := *session
	return &copied, nil
}

func (s *Service) closeLocked(id uuid.UUID, session *Session) {
	if session.Spotlight == SpotlightClosed || session.Spotlight == SpotlightClosing {
		return
	}

	s.cancelTimerLocked(id)
	session.generation++
	session.Spotlight = SpotlightClosing
	session.UpdatedAt = time.Now()
	s.touched[id] = time.Now()

	gen := session.generation
	s.cancels[id] = s.clock.AfterFunc(TransitionDuration, func() {
		s.advance(id, gen, SpotlightClosing, SpotlightClosed)
	})
}

// Reconcile applies the photo= query parameter to the session. A removed
// parameter while the viewer is open means an external navigation (back
// button) closed it: the close is scheduled, never applied synchronously
// inside reconciliation. A present parameter opens that photo.
func (s *Service) Reconcile(id uuid.UUID, queryPhotoID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	viewerShown := session.Spotlight == SpotlightOpening || session.Spotlight == SpotlightOpen

	if queryPhotoID == "" && viewerShown {
		gen := session.generation
		s.clock.AfterFunc(0, func() {
			s.deferredClose(id, gen)
		})
	} else if queryPhotoID != "" && !viewerShown && s.catalog.ByID(queryPhotoID) != nil {
		s.openLocked(id, session, queryPhotoID)
	}

	s.touched[id] = time.Now()
	copied := *session
	return &copied, nil
}

func (s *Service) deferredClose(id uuid.UUID, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.generation != gen {
		return
	}
	s.closeLocked(id, session)
}

// advance moves the spotlight from one state to the next if the session is
// still on the generation that scheduled it.
func (s *Service) advance(id uuid.UUID, gen uint64, from, to SpotlightState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.generation != gen || session.Spotlight != from {
		return
	}

	session.Spotlight = to
	session.UpdatedAt = time.Now()
	if to == SpotlightClosed {
		session.PhotoID = ""
		session.ScrollLocked = false
	}
	delete(s.cancels, id)
}

func (s *Service) cancelTimerLocked(id uuid.UUID) {
	if cancel := s.cancels[id]; cancel != nil {
		cancel()
		delete(s.cancels, id)
	}
}

// SpotlightDetail returns the purchase projection for the photo the viewer
// is showing, nil when the viewer has no photo.
func (s *Service) SpotlightDetail(id uuid.UUID) (*catalog.Detail, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if session.PhotoID == "" {
		return nil, nil
	}
	return s.catalog.DetailByID(session.PhotoID), nil
}

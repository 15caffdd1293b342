package design

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const sessionKeyPrefix = "design:session:"

// Store holds design sessions in memory with an optional Redis mirror.
// With Redis configured a restarted or scaled-out instance can adopt
// sessions it has never seen; without it (nil client) sessions live only
// in this process.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	touched  map[uuid.UUID]time.Time

	redis *redis.Client
	ttl   time.Duration

	stop chan struct{}
	once sync.Once
}

// NewStore creates a session store. redisClient may be nil.
func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		touched:  make(map[uuid.UUID]time.Time),
		redis:    redisClient,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

// StartCleanup evicts idle sessions on an interval (call in goroutine)
func (s *Store) StartCleanup(interval time.Duration) {
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
func (s *Store) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, last := range s.touched {
		if last.Before(cutoff) {
			delete(s.sessions, id)
			delete(s.touched, id)
		}
	}
}

// Save stores a session and refreshes its TTL
func (s *Store) Save(ctx context.Context, session *Session) {
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.touched[session.ID] = time.Now()
	s.mu.Unlock()

	s.mirror(ctx, session)
}

// Get returns a deep copy of the session, consulting the Redis mirror on a
// local miss.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		s.mu.Lock()
		s.touched[id] = time.Now()
		s.mu.Unlock()
		return session.Clone(), nil
	}

	restored, err := s.restore(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[id] = restored
	s.touched[id] = time.Now()
	s.mu.Unlock()

	return restored.Clone(), nil
}

// Update applies fn to the session under the write lock and mirrors the
// result. This is the single write path for session state.
func (s *Store) Update(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		restored, err := s.restore(ctx, id)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		// Another goroutine may have restored it first
		if existing, ok := s.sessions[id]; ok {
			session = existing
		} else {
			s.sessions[id] = restored
			session = restored
		}
	}

	// fn works on a copy so a rejected command never leaves a half-applied
	// session behind
	working := session.Clone()
	if err := fn(working); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	working.UpdatedAt = time.Now()
	s.sessions[id] = working
	s.touched[id] = time.Now()
	snapshot := working.Clone()
	s.mu.Unlock()

	s.mirror(ctx, snapshot)
	return snapshot, nil
}

// Delete removes a session everywhere
func (s *Store) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	delete(s.touched, id)
	s.mu.Unlock()

	if s.redis != nil {
		if err := s.redis.Del(ctx, sessionKeyPrefix+id.String()).Err(); err != nil {
			log.Warn().Err(err).Str("session_id", id.String()).Msg("Failed to delete session mirror")
		}
	}
}

func (s *Store) mirror(ctx context.Context, session *Session) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(session)
	if err != nil {
		log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("Failed to marshal session for mirror")
		return
	}
	if err := s.redis.Set(ctx, sessionKeyPrefix+session.ID.String(), data, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("Failed to mirror session")
	}
}

func (s *Store) restore(ctx context.Context, id uuid.UUID) (*Session, error) {
	if s.redis == nil {
		return nil, ErrSessionNotFound
	}

	data, err := s.redis.Get(ctx, sessionKeyPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		log.Warn().Err(err).Str("session_id", id.String()).Msg("Session mirror read failed")
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Warn().Err(err).Str("session_id", id.String()).Msg("Session mirror payload invalid")
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

package design

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EventType for WebSocket messages
type EventType string

const (
	EventSessionState   EventType = "session_state"
	EventSessionDeleted EventType = "session_deleted"
)

const sessionChannelPrefix = "design:events:"

// WSEvent is one message on a session's event stream
type WSEvent struct {
	Type      EventType        `json:"type"`
	SessionID uuid.UUID        `json:"session_id"`
	Session   *SessionResponse `json:"session,omitempty"`
}

// Connection represents one subscribed WebSocket client
type Connection struct {
	SessionID uuid.UUID
	Conn      *websocket.Conn
	Send      chan []byte
}

// Hub fans session snapshots out to subscribed clients. With Redis
// configured, events publish through Pub/Sub so every instance's clients
// see them; without it, broadcast is local only.
type Hub struct {
	connections map[uuid.UUID]map[*Connection]bool

	redis  *redis.Client
	pubsub *redis.PubSub

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates a session event hub. redisClient may be nil.
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		connections: make(map[uuid.UUID]map[*Connection]bool),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
	}

	if redisClient != nil {
		h.pubsub = redisClient.PSubscribe(ctx, sessionChannelPrefix+"*")
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			if h.connections[conn.SessionID] == nil {
				h.connections[conn.SessionID] = make(map[*Connection]bool)
			}
			h.connections[conn.SessionID][conn] = true
			h.mu.Unlock()
			log.Debug().Str("session_id", conn.SessionID.String()).Msg("Client subscribed to design session")

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.connections[conn.SessionID]; ok {
				if _, exists := conns[conn]; exists {
					delete(conns, conn)
					close(conn.Send)
				}
				if len(conns) == 0 {
					delete(h.connections, conn.SessionID)
				}
			}
			h.mu.Unlock()
			log.Debug().Str("session_id", conn.SessionID.String()).Msg("Client unsubscribed from design session")
		}
	}
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}

			if len(msg.Channel) <= len(sessionChannelPrefix) ||
				msg.Channel[:len(sessionChannelPrefix)] != sessionChannelPrefix {
				continue
			}

			sessionID, err := uuid.Parse(msg.Channel[len(sessionChannelPrefix):])
			if err != nil {
				continue
			}

			h.sendLocal(sessionID, []byte(msg.Payload))
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastSession publishes the session's latest state to every
// subscriber, on every instance when Redis is available.
func (h *Hub) BroadcastSession(session *Session) {
	h.broadcast(session.ID, &WSEvent{
		Type:      EventSessionState,
		SessionID: session.ID,
		Session:   SessionResponseFrom(session),
	})
}

// BroadcastDeleted tells subscribers the session is gone
func (h *Hub) BroadcastDeleted(sessionID uuid.UUID) {
	h.broadcast(sessionID, &WSEvent{
		Type:      EventSessionDeleted,
		SessionID: sessionID,
	})
}

func (h *Hub) broadcast(sessionID uuid.UUID, event *WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal session event")
		return
	}

	if h.redis != nil {
		channel := sessionChannelPrefix + sessionID.String()
		if err := h.redis.Publish(h.ctx, channel, data).Err(); err != nil {
			log.Error().Err(err).Str("channel", channel).Msg("Redis publish failed")
			h.sendLocal(sessionID, data)
		}
		return
	}

	h.sendLocal(sessionID, data)
}

func (h *Hub) sendLocal(sessionID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections[sessionID] {
		select {
		case conn.Send <- data:
		default:
			// Buffer full, skip this message
			log.Warn().Str("session_id", sessionID.String()).Msg("WebSocket send buffer full")
		}
	}
}

// ConnectionCount returns the number of local connections
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, conns := range h.connections {
		total += len(conns)
	}
	return total
}

// Shutdown gracefully shuts down the hub
func (h *Hub) Shutdown() {
	h.cancel()
	if h.pubsub != nil {
		h.pubsub.Close()
	}
}

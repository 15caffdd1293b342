package design

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/lumengallery/lumen-api/internal/domain/wall"
	"github.com/lumengallery/lumen-api/internal/pkg/response"
	"github.com/lumengallery/lumen-api/internal/pkg/validator"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// Handler handles design session HTTP requests
type Handler struct {
	service  *Service
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler creates design handler
func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Create handles POST /design/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session := h.service.Create(r.Context(), req.ViewportWidth, req.ViewportHeight)
	response.Created(w, SessionResponseFrom(session))
}

// Get handles GET /design/sessions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// Delete handles DELETE /design/sessions/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	h.service.Delete(r.Context(), id)
	h.hub.BroadcastDeleted(id)
	response.NoContent(w)
}

// SelectSlot handles POST /design/sessions/{id}/slots/{index}/select
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "Invalid slot index")
		return
	}

	session, err := h.service.SelectSlot(r.Context(), id, index)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// PickPhoto handles POST /design/sessions/{id}/photos
func (h *Handler) PickPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req PickPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.PickPhoto(r.Context(), id, req.PhotoID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// Drop handles POST /design/sessions/{id}/drop
func (h *Handler) Drop(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req DropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var session *Session
	var err error
	if req.Slot != nil {
		session, err = h.service.DropOnSlot(r.Context(), id, *req.Slot, req.PhotoID)
	} else {
		session, err = h.service.DropOnCanvas(r.Context(), id, req.PhotoID)
	}
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// ClearSlot handles DELETE /design/sessions/{id}/slots/{index}
func (h *Handler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "Invalid slot index")
		return
	}

	session, err := h.service.ClearSlot(r.Context(), id, index)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// ClearLayout handles DELETE /design/sessions/{id}/slots
func (h *Handler) ClearLayout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.ClearLayout(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// SetLayout handles PUT /design/sessions/{id}/layout
func (h *Handler) SetLayout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SetLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.SetLayout(r.Context(), id, wall.Layout(req.Layout))
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// SetEnvironment handles PUT /design/sessions/{id}/environment
func (h *Handler) SetEnvironment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SetEnvironmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.SetEnvironment(r.Context(), id, wall.Environment(req.Environment))
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// SetFrame handles PUT /design/sessions/{id}/frame
func (h *Handler) SetFrame(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SetFrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.SetFrameStyle(r.Context(), id, wall.FrameStyle(req.FrameStyle))
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// SetMat handles PUT /design/sessions/{id}/mat
func (h *Handler) SetMat(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SetMatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.SetMatOption(r.Context(), id, wall.MatOption(req.MatOption))
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// Resize handles PUT /design/sessions/{id}/viewport
func (h *Handler) Resize(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req ResizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.Resize(r.Context(), id, req.ViewportWidth, req.ViewportHeight)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// StartDrag handles POST /design/sessions/{id}/drag
func (h *Handler) StartDrag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req StartDragRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.StartDrag(r.Context(), id, req.PhotoID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// EndDrag handles DELETE /design/sessions/{id}/drag
func (h *Handler) EndDrag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.EndDrag(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// NextStep handles POST /design/sessions/{id}/step/next
func (h *Handler) NextStep(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.service.NextStep)
}

// PrevStep handles POST /design/sessions/{id}/step/prev
func (h *Handler) PrevStep(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.service.PrevStep)
}

func (h *Handler) step(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (*Session, error)) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := fn(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, SessionResponseFrom(session))
}

// Plan handles GET /design/sessions/{id}/plan
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	performance := r.URL.Query().Get("performance") == "true"

	plan, err := h.service.Plan(r.Context(), id, performance)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response.OK(w, plan)
}

// WebSocket handles WS /design/sessions/{id}/ws
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	// The session must exist before a client can observe it
	if _, err := h.service.Get(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := &Connection{
		SessionID: id,
		Conn:      conn,
		Send:      make(chan []byte, 256),
	}

	h.hub.Register(client)

	go h.wsReader(client)
	go h.wsWriter(client)
}

func (h *Handler) wsReader(client *Connection) {
	defer func() {
		h.hub.Unregister(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Observers don't send commands over the socket; mutations go through
	// HTTP so the single write path stays intact. Reads only service the
	// close handshake and pongs.
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("session_id", client.SessionID.String()).Msg("WebSocket read error")
			}
			break
		}
	}
}

func (h *Handler) wsWriter(client *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.NotFound(w, "Session not found")
	case errors.Is(err, ErrPhotoNotFound):
		response.NotFound(w, "Photo not found")
	case errors.Is(err, ErrInvalidSlot):
		response.BadRequest(w, "Slot index out of range for layout")
	case errors.Is(err, ErrNoStep):
		response.BadRequest(w, "No step in that direction")
	default:
		response.InternalError(w, "Something went wrong")
	}
}

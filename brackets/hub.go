package brackets

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Dosada05/zone-cup/metrics"
)

// TournamentRoom is the room every spectator of the cup joins.
const TournamentRoom = "tournament"

// Event types pushed to subscribers.
const (
	EventTeamsUpdated   = "TEAMS_UPDATED"
	EventMatchRecorded  = "MATCH_RECORDED"
	EventRoundDrawn     = "ROUND_DRAWN"
	EventRoundCompleted = "ROUND_COMPLETED"
	EventStageChanged   = "STAGE_CHANGED"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is one spectator connection. Send is closed by the hub exactly once.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
	Room string

	mu     sync.Mutex
	closed bool
}

type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	stopped chan struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]struct{}),
		stopped:    make(chan struct{}),
		logger:     logger.With(slog.String("component", "ws_hub")),
	}
}

// Run serves registrations until done is closed, then disconnects everyone.
func (h *Hub) Run(done <-chan struct{}) {
	defer close(h.stopped)
	for {
		select {
		case <-done:
			h.closeAll()
			return
		case c := <-h.Register:
			h.add(c)
		case c := <-h.Unregister:
			h.remove(c)
		}
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.Room]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.Room] = room
	}
	room[c] = struct{}{}
	metrics.Spectators.Inc()
	h.logger.Debug("Client joined room", slog.String("room", c.Room), slog.Int("clients", len(room)))
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.Room]
	if !ok {
		return
	}
	if _, member := room[c]; !member {
		return
	}
	c.closeSend()
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.Room)
	}
	metrics.Spectators.Dec()
	h.logger.Debug("Client left room", slog.String("room", c.Room), slog.Int("clients", len(room)))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.rooms {
		for c := range room {
			c.closeSend()
			metrics.Spectators.Dec()
		}
		delete(h.rooms, id)
	}
}

// Join registers the client, or reports false once the hub has stopped.
func (h *Hub) Join(c *Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.stopped:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.stopped:
	}
}

// RoomSize returns the number of clients subscribed to roomID.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// BroadcastToRoom sends message as JSON to every client of roomID.
// A client whose buffer is full misses the message.
func (h *Hub) BroadcastToRoom(roomID string, message interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room := h.rooms[roomID]
	if len(room) == 0 {
		return
	}

	raw, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("Failed to encode broadcast", slog.String("room", roomID), slog.Any("error", err))
		return
	}

	for c := range room {
		if !c.offer(raw) {
			h.logger.Warn("Client send buffer full, message dropped", slog.String("room", roomID))
		}
	}
}

// Notify wraps payload into a WebSocketMessage for the tournament room.
func (h *Hub) Notify(eventType string, payload interface{}) {
	metrics.EventsBroadcast.WithLabelValues(eventType).Inc()
	h.BroadcastToRoom(TournamentRoom, WebSocketMessage{
		Type:    eventType,
		Payload: payload,
		RoomID:  TournamentRoom,
	})
}

// offer reports false when the buffer is full. A closed client accepts silently.
func (c *Client) offer(raw []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.Send <- raw:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.Send)
		c.closed = true
	}
}

// ReadPump keeps the connection alive. Spectators have nothing to say, incoming frames are discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.leave(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Websocket closed unexpectedly", slog.String("room", c.Room), slog.Any("error", err))
			}
			return
		}
	}
}

// WritePump writes queued events one per frame and pings on idle.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case raw, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// Одно сообщение на фрейм: клиенты парсят каждый фрейм как JSON.
			if err := c.Conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				c.Hub.logger.Debug("Websocket write failed", slog.String("room", c.Room), slog.Any("error", err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Hub.logger.Debug("Websocket ping failed", slog.String("room", c.Room), slog.Any("error", err))
				return
			}
		}
	}
}

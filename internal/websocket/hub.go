package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cx-tal-miterani/skybook/internal/models"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
	broadcastQueue = 256
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeFlightBooked MessageType = "flight_booked"
)

// Message represents a WebSocket message
type Message struct {
	Type             MessageType `json:"type"`
	FlightID         int         `json:"flightId"`
	ConfirmationCode string      `json:"confirmationCode,omitempty"`
	Message          string      `json:"message,omitempty"`
	Timestamp        int64       `json:"timestamp"`
}

// Client represents a WebSocket client connection
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	flightID int
}

// Hub fans booking acknowledgments out to the clients watching each offer
type Hub struct {
	clients    map[int]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	done       chan struct{}
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

// NewHub creates a new Hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, broadcastQueue),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run starts the hub's main loop. It returns when ctx is cancelled, closing
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for flightID, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
				delete(h.clients, flightID)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightID] == nil {
				h.clients[client.flightID] = make(map[*Client]bool)
			}
			h.clients[client.flightID][client] = true
			total := len(h.clients[client.flightID])
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", "flightId", client.flightID, "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.flightID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.flightID)
					}
				}
			}
			h.mu.Unlock()
			h.logger.Debug("websocket client unregistered", "flightId", client.flightID)

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.logger.Error("failed to marshal websocket message", "error", err)
				continue
			}

			h.mu.Lock()
			clients := h.clients[message.FlightID]
			for client := range clients {
				select {
				case client.send <- data:
				default:
					delete(clients, client)
					close(client.send)
				}
			}
			if len(clients) == 0 {
				delete(h.clients, message.FlightID)
			}
			h.mu.Unlock()
		}
	}
}

// NotifyFlightBooked tells everyone watching the booked offer. The message is
// dropped when the broadcast queue is full.
func (h *Hub) NotifyFlightBooked(confirmation models.BookingConfirmation) {
	msg := &Message{
		Type:             MessageTypeFlightBooked,
		FlightID:         confirmation.Flight.ID,
		ConfirmationCode: confirmation.ConfirmationCode,
		Message:          confirmation.Flight.Airline + " " + confirmation.Flight.From + " → " + confirmation.Flight.To + " was just booked",
		Timestamp:        confirmation.BookedAt.UnixMilli(),
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("websocket broadcast queue full, dropping message", "flightId", msg.FlightID)
	}
}

// ClientCount returns the number of clients watching a flight
func (h *Hub) ClientCount(flightID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[flightID])
}

// HandleWebSocket handles GET /api/flights/{id}/ws
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	flightID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || flightID <= 0 {
		http.Error(w, "invalid flight id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "flightId", flightID, "error", err)
		return
	}

	client := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		flightID: flightID,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump discards inbound frames and unregisters the client once the
// connection fails.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

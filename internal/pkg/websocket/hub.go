package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models"
)

const broadcastBuffer = 64

// CapacityUpdate is pushed to every listener when an event gains or loses a participant
type CapacityUpdate struct {
	Type             string    `json:"type"`
	EventID          int64     `json:"eventId"`
	ParticipantCount int       `json:"participantCount"`
	TotalPlayers     int       `json:"totalPlayers"`
	SpotsLeft        int       `json:"spotsLeft"`
	Full             bool      `json:"full"`
	Timestamp        time.Time `json:"timestamp"`
}

// Hub maintains the set of connected event-list clients and fans capacity updates out to them
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is done, then disconnects every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug().Str("addr", client.addr).Msg("Client registered")

		case client := <-h.unregister:
			h.removeClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info().Msg("Live update hub stopped")
			return
		}
	}
}

// CapacityChanged publishes the new participant count of event. It never blocks the caller.
func (h *Hub) CapacityChanged(event *models.Event, participantCount int) {
	spotsLeft := event.TotalPlayers - participantCount
	if spotsLeft < 0 {
		spotsLeft = 0
	}
	data, err := json.Marshal(CapacityUpdate{
		Type:             "capacity",
		EventID:          event.ID,
		ParticipantCount: participantCount,
		TotalPlayers:     event.TotalPlayers,
		SpotsLeft:        spotsLeft,
		Full:             event.IsFull(participantCount),
		Timestamp:        time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("eventID", event.ID).Msg("Failed to marshal capacity update")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn().Int64("eventID", event.ID).Msg("Broadcast queue full, dropping capacity update")
	}
}

// join hands client to the running hub. It reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave removes client from the running hub
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Debug().Str("addr", client.addr).Msg("Client unregistered")
	}
}

// broadcastMessage sends message to every client, dropping those whose buffer is full
func (h *Hub) broadcastMessage(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			delete(h.clients, client)
			close(client.send)
			h.logger.Warn().Str("addr", client.addr).Msg("Dropped slow client")
		}
	}

	h.logger.Debug().Int("clientCount", len(h.clients)).Msg("Capacity update broadcast")
}

package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/SR3DR3/planncomm-v2/internal/metrics"

	"github.com/gorilla/websocket"
)

// Message is the envelope clients exchange over the websocket. Data is kept
// opaque; the hub relays it untouched.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// relayedEvents lists the update notifications the hub forwards. Anything
// else a client sends is dropped.
var relayedEvents = map[string]bool{
	"task-updated":     true,
	"client-updated":   true,
	"employee-updated": true,
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type broadcastMessage struct {
	sender *websocket.Conn
	msg    Message
}

// Hub relays update events between connected clients so every open planning
// screen refreshes when one of them changes data. The sender is excluded
// from the fan-out; it already has the change locally.
type Hub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan broadcastMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan broadcastMessage),
	}
}

// Run fans broadcast messages out to every client except the sender. Meant
// to be started once as a goroutine.
func (h *Hub) Run() {
	for bm := range h.broadcast {
		h.clientsMux.Lock()
		for client := range h.clients {
			if client == bm.sender {
				continue
			}
			if err := client.WriteJSON(bm.msg); err != nil {
				client.Close()
				delete(h.clients, client)
				metrics.WebsocketClients.Dec()
			}
		}
		h.clientsMux.Unlock()
	}
}

// HandleWebSocket upgrades the connection and pumps incoming update events
// into the broadcast channel until the client disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[WebSocket] upgrade error:", err)
		return
	}

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()
	metrics.WebsocketClients.Inc()

	defer func() {
		h.clientsMux.Lock()
		if h.clients[conn] {
			delete(h.clients, conn)
			metrics.WebsocketClients.Dec()
		}
		h.clientsMux.Unlock()
		conn.Close()
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if !relayedEvents[msg.Event] {
			continue
		}
		h.broadcast <- broadcastMessage{sender: conn, msg: msg}
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	return len(h.clients)
}

package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/akeil/journal"
	"github.com/akeil/journal/internal/logging"
	"github.com/akeil/journal/pkg/render"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

// event is pushed to connected browsers when the paper changes.
type event struct {
	Type    string              `json:"type"`
	Config  journal.PaperConfig `json:"config"`
	Metrics render.TextMetrics  `json:"metrics"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// hub keeps track of connected websocket clients.
type hub struct {
	clients map[*client]bool
	mx      sync.Mutex
}

func newHub() *hub {
	return &hub{
		clients: make(map[*client]bool),
	}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (h *hub) add(c *client) {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.clients[c] = true
	logging.Debug("Websocket client connected, %d clients", len(h.clients))
}

func (h *hub) remove(c *client) {
	h.mx.Lock()
	defer h.mx.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		c.close()
		logging.Debug("Websocket client disconnected, %d clients", len(h.clients))
	}
}

// broadcast queues the event for all clients.
// Clients which do not keep up miss the event.
func (h *hub) broadcast(e event) {
	msg, err := json.Marshal(e)
	if err != nil {
		logging.Error("Failed to encode %q event: %v", e.Type, err)
		return
	}

	h.mx.Lock()
	defer h.mx.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			logging.Warning("Drop %q event for slow websocket client", e.Type)
		}
	}
}

func (h *hub) closeAll() {
	h.mx.Lock()
	defer h.mx.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response
		logging.Warning("Websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	s.hub.add(c)

	go c.writeLoop()
	go func() {
		c.readLoop()
		s.hub.remove(c)
	}()
}

// writeLoop sends queued events and keeps the connection alive with pings.
func (c *client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer c.conn.Close()

	for {
		select {
		case <-c.done:
			// close the connection by sending a close message
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.conn.WriteMessage(websocket.TextMessage, msg)
			if err != nil {
				logging.Debug("Websocket write failed: %v", err)
				return
			}
		case <-ticker.C:
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			if err != nil {
				logging.Debug("Websocket ping failed: %v", err)
				return
			}
		}
	}
}

// readLoop discards incoming messages until the connection is closed.
func (c *client) readLoop() {
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Websocket closed: %v", err)
			}
			return
		}
	}
}

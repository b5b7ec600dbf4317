// Package api provides a WebSocket server that broadcasts captured input
// events to connected clients.
package api

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"winhook"
	"winhook/internal/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local network tool; accept all origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server accepts WebSocket clients on /ws and fans captured events out to
// all of them.
type Server struct {
	version string

	clients    map[*client]bool
	clientsMu  sync.RWMutex
	broadcast  chan protocol.Message
	register   chan *client
	unregister chan *client
	shutdown   chan struct{}
	once       sync.Once

	httpSrv *http.Server
}

// NewServer creates a broadcast server.
func NewServer(version string) *Server {
	s := &Server{
		version:    version,
		clients:    make(map[*client]bool),
		broadcast:  make(chan protocol.Message, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		shutdown:   make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// Created here, before Start's goroutine exists, so Stop can always
	// close it without racing startup.
	s.httpSrv = &http.Server{Handler: mux}

	return s
}

// Start listens on addr and serves until Stop is called. Blocking.
func (s *Server) Start(addr string) error {
	go s.run()

	ln, err := net.Listen("tcp4", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	log.Printf("api: broadcast server listening on %s", addr)

	if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server and the broadcast loop down.
func (s *Server) Stop() {
	s.once.Do(func() { close(s.shutdown) })
	s.httpSrv.Close()
}

// BroadcastInput fans one captured event out to all connected clients.
// Never blocks the caller: when the broadcast queue is full the event is
// dropped for remote consumers.
func (s *Server) BroadcastInput(ev winhook.InputEvent) {
	msg := protocol.Message{
		Type: protocol.TypeInput,
		Payload: protocol.InputPayload{
			Event:     ev,
			Timestamp: time.Now().UnixMilli(),
		},
	}
	select {
	case s.broadcast <- msg:
	case <-s.shutdown:
	default:
		log.Printf("api: broadcast queue full, dropping event")
	}
}

func (s *Server) run() {
	for {
		select {
		case c := <-s.register:
			s.clientsMu.Lock()
			s.clients[c] = true
			total := len(s.clients)
			s.clientsMu.Unlock()
			log.Printf("api: client connected from %s (total %d)", c.ip, total)

		case c := <-s.unregister:
			s.clientsMu.Lock()
			if _, ok := s.clients[c]; ok {
				delete(s.clients, c)
				close(c.send)
			}
			total := len(s.clients)
			s.clientsMu.Unlock()
			log.Printf("api: client disconnected from %s (total %d)", c.ip, total)

		case msg := <-s.broadcast:
			s.broadcastMessage(msg)

		case <-s.shutdown:
			return
		}
	}
}

func (s *Server) broadcastMessage(msg protocol.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("api: failed to marshal broadcast message: %v", err)
		return
	}

	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Slow client; drop the message rather than stall the hub.
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("api: failed to upgrade connection: %v", err)
		return
	}

	c := &client{
		server: s,
		conn:   conn,
		send:   make(chan []byte, 256),
		ip:     r.RemoteAddr,
	}

	select {
	case s.register <- c:
	case <-s.shutdown:
		conn.Close()
		return
	}

	hello, _ := json.Marshal(protocol.Message{
		Type:    protocol.TypeHello,
		Payload: protocol.HelloPayload{Version: s.version},
	})
	c.send <- hello

	go c.writePump()
	go c.readPump()
}

// client represents one connected WebSocket consumer.
type client struct {
	server *Server
	conn   *websocket.Conn
	send   chan []byte
	ip     string
}

// readPump discards inbound traffic; the stream is one-way. It exists to
// notice closed connections and honor pings.
func (c *client) readPump() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.shutdown:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("api: read error: %v", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(50 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

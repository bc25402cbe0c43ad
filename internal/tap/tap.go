// Package tap streams observed input events to websocket subscribers.
package tap

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one observed input event in wire form.
type Event struct {
	// Device is "keyboard" or "mouse".
	Device string `json:"device"`
	// Kind names the event: "down", "up", "move", "wheel".
	Kind string `json:"kind"`
	// VK and Scan identify the key for keyboard events.
	VK   uint32 `json:"vk,omitempty"`
	Scan uint32 `json:"scan,omitempty"`
	// Char is the layout character the key produces, when it has one.
	Char string `json:"char,omitempty"`
	// Dead marks a key that modifies the next character.
	Dead bool `json:"dead,omitempty"`
	// Button names the mouse button for button events.
	Button string `json:"button,omitempty"`
	// X and Y are screen coordinates for mouse events.
	X int32 `json:"x,omitempty"`
	Y int32 `json:"y,omitempty"`
	// Delta is the wheel rotation for wheel events.
	Delta int16 `json:"delta,omitempty"`
	// Suppressed reports that the event was withheld from the system.
	Suppressed bool `json:"suppressed,omitempty"`
}

// Command is one inbound synthesis request from a subscriber.
type Command struct {
	// T names the command: "type", "tap", "move", "click", "wheel".
	T string `json:"t"`
	// Text is the string to type for "type".
	Text string `json:"text,omitempty"`
	// Char selects the key to press for "tap".
	Char string `json:"char,omitempty"`
	// X and Y are absolute screen coordinates for "move" and "click".
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`
	// Delta is the wheel rotation for "wheel".
	Delta int `json:"delta,omitempty"`
}

// CommandHandler executes one inbound command. A returned error closes the
// issuing connection.
type CommandHandler func(Command) error

// Server accepts websocket subscribers, fans events out to them, and routes
// their commands to the handler.
type Server struct {
	mu        sync.Mutex
	upgrader  websocket.Upgrader
	onCommand CommandHandler
	conns     map[*websocket.Conn]bool
}

// NewServer creates an event tap server with no subscribers. A nil handler
// makes subscribers observe-only: anything they send closes the connection.
func NewServer(onCommand CommandHandler) *Server {
	return &Server{
		onCommand: onCommand,
		conns:     make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and keeps it subscribed until the peer
// goes away or one of its commands fails.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.addConn(conn)
	defer s.dropConn(conn)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		if s.onCommand == nil {
			return
		}
		if err := s.onCommand(cmd); err != nil {
			return
		}
	}
}

// Broadcast sends one event to every subscriber. Subscribers whose write
// fails are dropped.
func (s *Server) Broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteJSON(ev); err != nil {
			delete(s.conns, conn)
			_ = conn.Close()
		}
	}
}

// ClientCount reports the number of live subscribers.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// addConn registers a subscriber.
func (s *Server) addConn(conn *websocket.Conn) {
	s.mu.Lock()
	s.conns[conn] = true
	s.mu.Unlock()
}

// dropConn removes a subscriber and closes it.
func (s *Server) dropConn(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

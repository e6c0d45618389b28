package pong

import (
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/websocket"
)

// spectatorWriteTimeout bounds how long a slow viewer can stall a frame
const spectatorWriteTimeout = 50 * time.Millisecond

// Spectator mirrors snapshots to any number of websocket viewers. Viewers
// cannot send input; anything they write is discarded.
type Spectator struct {
	// sendMu orders deliveries so a joining viewer's first snapshot is
	// never overtaken by a newer one
	sendMu sync.Mutex

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	last   *Snapshot
	closed bool
}

// NewSpectator returns a feed with no viewers
func NewSpectator() *Spectator {
	return &Spectator{conns: make(map[*websocket.Conn]struct{})}
}

// Handler upgrades requests to websocket viewers
func (s *Spectator) Handler() http.Handler {
	return websocket.Server{Handler: websocket.Handler(s.serve)}
}

func (s *Spectator) serve(ws *websocket.Conn) {
	if !s.join(ws) {
		return
	}

	for {
		var discard string
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			s.drop(ws, err)
			return
		}
	}
}

// join registers ws and hands it the latest snapshot before any later one
func (s *Spectator) join(ws *websocket.Conn) bool {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.conns[ws] = struct{}{}
	last := s.last
	s.mu.Unlock()

	log.Printf("spectator %s joined", ws.Request().RemoteAddr)
	if last != nil {
		if err := send(ws, *last); err != nil {
			s.drop(ws, err)
			return false
		}
	}
	return true
}

// Publish sends snap to every viewer, dropping the ones that fail
func (s *Spectator) Publish(snap Snapshot) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	s.last = &snap
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := send(c, snap); err != nil {
			s.drop(c, err)
		}
	}
}

func send(ws *websocket.Conn, snap Snapshot) error {
	if err := ws.SetWriteDeadline(time.Now().Add(spectatorWriteTimeout)); err != nil {
		return err
	}
	return websocket.JSON.Send(ws, snap)
}

func (s *Spectator) drop(ws *websocket.Conn, err error) {
	s.mu.Lock()
	_, ok := s.conns[ws]
	delete(s.conns, ws)
	s.mu.Unlock()

	if ok {
		log.Printf("spectator %s left: %v", ws.Request().RemoteAddr, err)
	}
	ws.Close()
}

// Len returns the number of connected viewers
func (s *Spectator) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Close disconnects every viewer and refuses new ones
func (s *Spectator) Close() error {
	s.mu.Lock()
	s.closed = true
	conns := s.conns
	s.conns = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	for c := range conns {
		c.Close()
	}
	return nil
}

// ListenAndServe serves viewers on addr until the listener fails
func (s *Spectator) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", s.Handler())
	return http.ListenAndServe(addr, mux)
}

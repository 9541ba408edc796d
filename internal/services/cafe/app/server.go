// Package app hosts the cafe transports: a TCP line server for remote
// sessions and a console runner for local ones. Each server process pins
// a single role; guests and staff connect to different listeners.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/session"
)

// Server accepts TCP connections and runs one session per connection.
type Server struct {
	role     session.Role
	system   *ordering.System
	listener net.Listener

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool

	wg sync.WaitGroup
}

// New binds the listener immediately so callers can read Addr before Serve.
func New(role session.Role, addr string, system *ordering.System) (*Server, error) {
	if system == nil {
		return nil, errors.New("ordering system is required")
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &Server{
		role:     role,
		system:   system,
		listener: listener,
		conns:    make(map[net.Conn]struct{}),
	}, nil
}

// Addr reports the bound listener address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve accepts connections until ctx is canceled or the listener fails.
// Cancellation closes the listener and any in-flight sessions, then waits
// for their goroutines before returning nil.
func (s *Server) Serve(ctx context.Context) error {
	log.Printf("cafe %s server listening at %s", s.role, s.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.acceptLoop(ctx)
	}()

	select {
	case <-ctx.Done():
		s.Close()
		<-serveErr
		s.wg.Wait()
		return nil
	case err := <-serveErr:
		s.Close()
		s.wg.Wait()
		if err == nil || errors.Is(err, net.ErrClosed) {
			return nil
		}
		return fmt.Errorf("serve cafe %s: %w", s.role, err)
	}
}

func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		if !s.track(conn) {
			conn.Close()
			return net.ErrClosed
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)
			s.handleConn(ctx, conn)
		}()
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	handler := session.NewHandler(s.role, s.system, newConnLineIO(conn))
	if err := handler.Run(ctx); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("cafe %s session %s: %v", s.role, conn.RemoteAddr(), err)
	}
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

// Close stops the listener and tears down active sessions.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	conns := make([]net.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	s.listener.Close()
	for _, conn := range conns {
		conn.Close()
	}
}

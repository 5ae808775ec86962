package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"sync"

	"stayhub/internal/pkg/errs"
)

// Handler processes one inbound message. For correlated requests the return
// value (or error) becomes the single reply; for events both are discarded
// after logging.
type Handler func(ctx context.Context, data json.RawMessage) (any, error)

// Server is the receiving side of the transport: it accepts connections,
// decodes envelopes and dispatches them by pattern.
type Server struct {
	log *slog.Logger

	mu       sync.Mutex
	handlers map[string]Handler
	ln       net.Listener
	conns    map[net.Conn]struct{}
	closed   bool
}

func NewServer(log *slog.Logger) *Server {
	return &Server{
		log:      log,
		handlers: make(map[string]Handler),
		conns:    make(map[net.Conn]struct{}),
	}
}

func (s *Server) Handle(pattern string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.handlers[pattern]; dup {
		panic("transport: duplicate handler for pattern " + pattern)
	}
	s.handlers[pattern] = h
}

func (s *Server) Listen(addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errs.Wrap(err, "failed to listen on "+addr)
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	go s.acceptLoop(ln)
	return ln.Addr(), nil
}

func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	ln := s.ln
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	if ln != nil {
		return ln.Close()
	}
	return nil
}

func (s *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if !closed {
				s.log.Error("accept failed", "error", err)
			}
			return
		}

		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		_ = conn.Close()
	}()

	var wmu sync.Mutex
	for {
		env, err := readEnvelope(conn)
		if err != nil {
			return
		}
		go s.dispatch(conn, &wmu, env)
	}
}

func (s *Server) dispatch(conn net.Conn, wmu *sync.Mutex, env Envelope) {
	s.mu.Lock()
	h, ok := s.handlers[env.Pattern]
	s.mu.Unlock()

	// Uncorrelated envelope: fire-and-forget event, never replied to.
	if env.ID == "" {
		if !ok {
			s.log.Warn("no handler for event", "pattern", env.Pattern)
			return
		}
		if _, err := h(context.Background(), env.Data); err != nil {
			s.log.Warn("event handler failed", "pattern", env.Pattern, "error", err)
		}
		return
	}

	reply := Envelope{ID: env.ID}
	switch {
	case !ok:
		reply.Err = "unknown pattern: " + env.Pattern
	default:
		result, err := h(context.Background(), env.Data)
		if err != nil {
			reply.Err = err.Error()
		} else if result != nil {
			data, marshalErr := json.Marshal(result)
			if marshalErr != nil {
				s.log.Error("failed to marshal reply", "pattern", env.Pattern, "error", marshalErr)
				reply.Err = "internal error"
			} else {
				reply.Data = data
			}
		}
	}

	wmu.Lock()
	writeErr := writeEnvelope(conn, reply)
	wmu.Unlock()
	if writeErr != nil {
		s.log.Warn("failed to write reply", "pattern", env.Pattern, "error", writeErr)
	}
}

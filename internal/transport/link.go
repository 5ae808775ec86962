package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrLinkClosed resolves every request that was in flight when the
	// connection dropped, and any request issued afterwards.
	ErrLinkClosed = errors.New("transport link closed")
)

// RemoteError is an explicit negative result returned by the remote handler,
// as opposed to a transport-level failure.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %s", e.Message)
}

type pendingReply struct {
	ch chan Envelope
}

// Link is one logical connection to a named remote endpoint. It supports
// correlated request/response and fire-and-forget emit, both safe for
// concurrent use. Each reply is routed only to the caller whose correlation
// id matches; replies may arrive in any order.
type Link struct {
	addr string
	log  *slog.Logger

	conn net.Conn
	wmu  sync.Mutex // serializes frame writes

	mu      sync.Mutex
	pending map[string]pendingReply
	closed  bool
}

func Dial(addr string, log *slog.Logger) (*Link, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial "+addr)
	}

	l := &Link{
		addr:    addr,
		log:     log,
		conn:    conn,
		pending: make(map[string]pendingReply),
	}
	go l.readLoop()
	return l, nil
}

// Request sends a correlated frame and suspends the caller until the matching
// reply arrives, the context is done, or the link fails. A reply carrying a
// remote error is returned as *RemoteError.
func (l *Link) Request(ctx context.Context, pattern string, payload json.RawMessage) (json.RawMessage, error) {
	id := uuid.NewString()
	p := pendingReply{ch: make(chan Envelope, 1)}

	// Register before sending so a fast reply cannot race past us.
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, ErrLinkClosed
	}
	l.pending[id] = p
	l.mu.Unlock()

	env := Envelope{ID: id, Pattern: pattern, Data: payload}
	if err := l.send(env); err != nil {
		l.unregister(id)
		return nil, err
	}

	select {
	case reply, ok := <-p.ch:
		if !ok {
			return nil, ErrLinkClosed
		}
		if reply.Err != "" {
			return nil, &RemoteError{Message: reply.Err}
		}
		return reply.Data, nil
	case <-ctx.Done():
		l.unregister(id)
		return nil, errs.Wrap(ctx.Err(), fmt.Sprintf("request %q abandoned", pattern))
	}
}

// Emit sends an uncorrelated frame and returns as soon as it is handed to the
// transport. No reply is ever awaited.
func (l *Link) Emit(pattern string, payload json.RawMessage) error {
	return l.send(Envelope{Pattern: pattern, Data: payload})
}

func (l *Link) Close() error {
	return l.conn.Close()
}

func (l *Link) send(env Envelope) error {
	l.wmu.Lock()
	defer l.wmu.Unlock()

	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return ErrLinkClosed
	}

	if err := writeEnvelope(l.conn, env); err != nil {
		return errs.Mark(err, ErrLinkClosed)
	}
	return nil
}

func (l *Link) unregister(id string) {
	l.mu.Lock()
	delete(l.pending, id)
	l.mu.Unlock()
}

// readLoop routes each incoming reply to its registered caller. On any read
// failure every outstanding request is failed atomically.
func (l *Link) readLoop() {
	for {
		env, err := readEnvelope(l.conn)
		if err != nil {
			l.failAll()
			return
		}
		if env.ID == "" {
			l.log.Warn("dropping reply without correlation id", "remote", l.addr)
			continue
		}

		l.mu.Lock()
		p, ok := l.pending[env.ID]
		if ok {
			delete(l.pending, env.ID)
		}
		l.mu.Unlock()

		if !ok {
			// Late reply for an abandoned request.
			l.log.Debug("dropping unmatched reply", "correlation_id", env.ID, "remote", l.addr)
			continue
		}
		p.ch <- env
	}
}

func (l *Link) failAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	for id, p := range l.pending {
		close(p.ch)
		delete(l.pending, id)
	}
	_ = l.conn.Close()
}

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// rawRemote is a frame-level test double for the remote endpoint, giving the
// tests full control over reply timing and ordering.
type rawRemote struct {
	t  *testing.T
	ln net.Listener

	mu   sync.Mutex
	conn net.Conn
}

func newRawRemote(t *testing.T) *rawRemote {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	return &rawRemote{t: t, ln: ln}
}

func (r *rawRemote) addr() string {
	return r.ln.Addr().String()
}

func (r *rawRemote) accept() {
	conn, err := r.ln.Accept()
	require.NoError(r.t, err)
	r.mu.Lock()
	r.conn = conn
	r.mu.Unlock()
}

func (r *rawRemote) read() Envelope {
	env, err := readEnvelope(r.conn)
	require.NoError(r.t, err)
	return env
}

func (r *rawRemote) write(env Envelope) {
	require.NoError(r.t, writeEnvelope(r.conn, env))
}

func (r *rawRemote) closeConn() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn != nil {
		_ = r.conn.Close()
	}
}

func TestLinkRequestReply(t *testing.T) {
	remote := newRawRemote(t)
	go func() {
		remote.accept()
		env := remote.read()
		remote.write(Envelope{ID: env.ID, Data: json.RawMessage(`{"ok":true}`)})
	}()

	link, err := Dial(remote.addr(), testLogger())
	require.NoError(t, err)
	defer link.Close()

	reply, err := link.Request(context.Background(), "ping", json.RawMessage(`{}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(reply))
}

func TestLinkConcurrentRequestsNoCrossTalk(t *testing.T) {
	const n = 16

	remote := newRawRemote(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		remote.accept()

		// Collect every request first, then reply in reverse send order. The
		// correlation id must be the only routing key.
		envs := make([]Envelope, 0, n)
		for i := 0; i < n; i++ {
			envs = append(envs, remote.read())
		}
		for i := len(envs) - 1; i >= 0; i-- {
			var req struct {
				Seq int `json:"seq"`
			}
			require.NoError(t, json.Unmarshal(envs[i].Data, &req))
			remote.write(Envelope{
				ID:   envs[i].ID,
				Data: json.RawMessage(fmt.Sprintf(`{"seq":%d}`, req.Seq)),
			})
		}
	}()

	link, err := Dial(remote.addr(), testLogger())
	require.NoError(t, err)
	defer link.Close()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			payload := json.RawMessage(fmt.Sprintf(`{"seq":%d}`, seq))
			reply, err := link.Request(context.Background(), "echo", payload)
			require.NoError(t, err)

			var resp struct {
				Seq int `json:"seq"`
			}
			require.NoError(t, json.Unmarshal(reply, &resp))
			require.Equal(t, seq, resp.Seq, "reply routed to the wrong caller")
		}(i)
	}
	wg.Wait()
	<-done
}

func TestLinkDisconnectFailsAllOutstanding(t *testing.T) {
	const n = 8

	remote := newRawRemote(t)
	accepted := make(chan struct{})
	go func() {
		remote.accept()
		close(accepted)
		// Swallow the requests, then drop the connection without replying.
		for i := 0; i < n; i++ {
			remote.read()
		}
		remote.closeConn()
	}()

	link, err := Dial(remote.addr(), testLogger())
	require.NoError(t, err)
	<-accepted

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := link.Request(context.Background(), "void", json.RawMessage(`{}`))
			require.ErrorIs(t, err, ErrLinkClosed)
		}()
	}
	wg.Wait()

	// The link is unusable afterwards as well.
	_, err = link.Request(context.Background(), "void", json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrLinkClosed)
}

func TestLinkRequestContextTimeout(t *testing.T) {
	remote := newRawRemote(t)
	go func() {
		remote.accept()
		remote.read() // never reply
	}()

	link, err := Dial(remote.addr(), testLogger())
	require.NoError(t, err)
	defer link.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = link.Request(ctx, "stuck", json.RawMessage(`{}`))
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The abandoned correlation id was removed from the pending table.
	link.mu.Lock()
	pending := len(link.pending)
	link.mu.Unlock()
	require.Zero(t, pending)
}

func TestLinkEmitCarriesNoCorrelationID(t *testing.T) {
	remote := newRawRemote(t)
	got := make(chan Envelope, 1)
	go func() {
		remote.accept()
		got <- remote.read()
	}()

	link, err := Dial(remote.addr(), testLogger())
	require.NoError(t, err)
	defer link.Close()

	require.NoError(t, link.Emit("notify_email", json.RawMessage(`{"email":"a@b.com"}`)))

	select {
	case env := <-got:
		require.Empty(t, env.ID)
		require.Equal(t, "notify_email", env.Pattern)
	case <-time.After(time.Second):
		t.Fatal("event never arrived")
	}
}

func TestLinkRemoteErrorReply(t *testing.T) {
	remote := newRawRemote(t)
	go func() {
		remote.accept()
		env := remote.read()
		remote.write(Envelope{ID: env.ID, Err: "card declined"})
	}()

	link, err := Dial(remote.addr(), testLogger())
	require.NoError(t, err)
	defer link.Close()

	_, err = link.Request(context.Background(), "create_charge", json.RawMessage(`{}`))

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	require.Equal(t, "card declined", remoteErr.Message)
}

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stayhub/internal/auth"
	"stayhub/internal/domain/user"
	"stayhub/internal/guard"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/token"
	"stayhub/internal/rpc"
	"stayhub/internal/store"
	"stayhub/internal/transport"

	"github.com/stretchr/testify/require"
)

// End-to-end over a real in-process listener: guard checker → rpc client →
// transport link → auth handlers → reply.
func TestAuthenticateOverTransport(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	clk := clock.NewMockClock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	users := store.NewMemory[user.User]()
	tokens := token.NewService("test-secret", time.Minute, clk)
	uc := auth.NewUseCase(users, tokens, clk)

	srv := transport.NewServer(log)
	auth.RegisterHandlers(srv, uc)
	addr, err := srv.Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer srv.Close()

	link, err := transport.Dial(addr.String(), log)
	require.NoError(t, err)
	defer link.Close()

	checker := guard.NewRPCChecker(rpc.NewClient(link, 2*time.Second))

	u, err := uc.Register(ctx, "a@b.com", "password123")
	require.NoError(t, err)
	credential, _, err := uc.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)

	principal, err := checker.Check(ctx, credential)
	require.NoError(t, err)
	require.Equal(t, u.ID, principal.ID)
	require.Equal(t, "a@b.com", principal.Email)

	// Every failure kind arrives as the same opaque denial.
	_, err = checker.Check(ctx, "never-issued")
	var remoteErr *transport.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, "unauthorized", remoteErr.Message)

	clk.Add(2 * time.Minute)
	_, err = checker.Check(ctx, credential)
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, "unauthorized", remoteErr.Message)
}

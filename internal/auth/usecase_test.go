package auth_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/auth"
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/token"
	"stayhub/internal/store"

	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) (auth.UseCase, *store.Memory[user.User], *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	users := store.NewMemory[user.User]()
	tokens := token.NewService("test-secret", time.Minute, clk)
	return auth.NewUseCase(users, tokens, clk), users, clk
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	u, err := uc.Register(ctx, "A@B.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", u.Email)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "password123", u.PasswordHash)

	credential, loggedIn, err := uc.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, credential)
	require.Equal(t, u.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	_, err := uc.Register(ctx, "a@b.com", "password123")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "a@b.com", "different-pass")
	require.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	_, err := uc.Register(ctx, "a@b.com", "password123")
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, "a@b.com", "wrong-password")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = uc.Login(ctx, "nobody@b.com", "password123")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthenticateResolvesPrincipal(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	u, err := uc.Register(ctx, "a@b.com", "password123")
	require.NoError(t, err)

	credential, _, err := uc.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)

	principal, err := uc.Authenticate(ctx, credential)
	require.NoError(t, err)
	require.Equal(t, u.ID, principal.ID)
	require.Equal(t, "a@b.com", principal.Email)
}

func TestAuthenticateFailureKindsStayDistinct(t *testing.T) {
	ctx := context.Background()
	uc, users, clk := newUseCase(t)

	u, err := uc.Register(ctx, "a@b.com", "password123")
	require.NoError(t, err)

	credential, _, err := uc.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)

	// Garbage credential: invalid.
	_, err = uc.Authenticate(ctx, "not-a-token")
	require.ErrorIs(t, err, token.ErrInvalidToken)

	// Past TTL: expired.
	clk.Add(2 * time.Minute)
	_, err = uc.Authenticate(ctx, credential)
	require.ErrorIs(t, err, token.ErrExpiredToken)

	// Fresh token whose subject was deleted meanwhile: subject gone.
	clk.Set(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	credential, _, err = uc.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)
	_, err = users.FindOneAndDelete(ctx, u.ID)
	require.NoError(t, err)
	_, err = uc.Authenticate(ctx, credential)
	require.ErrorIs(t, err, auth.ErrSubjectNotFound)
}

func TestRegisterWeakPassword(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Register(context.Background(), "a@b.com", "short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

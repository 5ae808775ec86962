package auth

import (
	"context"
	"errors"
	"strings"

	"stayhub/internal/domain/user"
	"stayhub/internal/guard"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/password"
	"stayhub/internal/pkg/token"
	"stayhub/internal/store"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSubjectNotFound    = errors.New("token subject no longer exists")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type UserStore = store.Store[user.User]

type UseCase interface {
	Register(ctx context.Context, email, plainPassword string) (user.User, error)
	// Login returns the signed credential alongside the user on success.
	Login(ctx context.Context, email, plainPassword string) (string, user.User, error)
	// Authenticate validates a presented credential and resolves it to a
	// Principal. Failure kinds (invalid, expired, subject gone) stay
	// distinguishable here; the RPC boundary collapses them into a denial.
	Authenticate(ctx context.Context, credential string) (guard.Principal, error)
	GetUser(ctx context.Context, id uuid.UUID) (user.User, error)
}

type useCaseImpl struct {
	users  UserStore
	tokens *token.Service
	clock  clock.Clock
}

func NewUseCase(users UserStore, tokens *token.Service, clk clock.Clock) UseCase {
	return &useCaseImpl{
		users:  users,
		tokens: tokens,
		clock:  clk,
	}
}

func (a *useCaseImpl) Register(ctx context.Context, email, plainPassword string) (user.User, error) {
	if len(plainPassword) < 8 {
		return user.User{}, user.ErrPasswordTooWeak
	}

	existing, err := a.findByEmail(ctx, email)
	if err == nil && existing.ID != uuid.Nil {
		return user.User{}, ErrEmailTaken
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return user.User{}, err
	}

	u, err := user.New(email, hash, a.clock.Now())
	if err != nil {
		return user.User{}, err
	}

	if err := a.users.Create(ctx, u.ID, u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (a *useCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, user.User, error) {
	u, err := a.findByEmail(ctx, email)
	if err != nil {
		return "", user.User{}, ErrInvalidCredentials
	}

	if err := password.ComparePassword(u.PasswordHash, plainPassword); err != nil {
		return "", user.User{}, ErrInvalidCredentials
	}

	credential, err := a.tokens.Issue(u.ID)
	if err != nil {
		return "", user.User{}, ErrTokenGeneration
	}

	return credential, u, nil
}

func (a *useCaseImpl) Authenticate(ctx context.Context, credential string) (guard.Principal, error) {
	claims, err := a.tokens.Validate(credential)
	if err != nil {
		// token.ErrInvalidToken or token.ErrExpiredToken, passed through.
		return guard.Principal{}, err
	}

	u, err := a.users.FindOne(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return guard.Principal{}, ErrSubjectNotFound
		}
		return guard.Principal{}, err
	}

	return guard.Principal{ID: u.ID, Email: u.Email}, nil
}

func (a *useCaseImpl) GetUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	return a.users.FindOne(ctx, id)
}

func (a *useCaseImpl) findByEmail(ctx context.Context, email string) (user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	matches, err := a.users.Find(ctx, func(u user.User) bool {
		return u.Email == email
	})
	if err != nil {
		return user.User{}, err
	}
	if len(matches) == 0 {
		return user.User{}, store.ErrNotFound
	}
	return matches[0], nil
}

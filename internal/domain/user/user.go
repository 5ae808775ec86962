package user

import (
	"strings"
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errs.New("invalid email")
	ErrPasswordTooWeak = errs.New("password must be at least 8 characters")
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func New(email, passwordHash string, now time.Time) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}

	return User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}

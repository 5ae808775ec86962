package token

import (
	"errors"
	"time"

	"stayhub/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	Subject uuid.UUID `json:"sub_id"`
	jwt.RegisteredClaims
}

// Service issues and validates self-contained signed credentials. Validity
// lives entirely in the signature and the embedded expiry, no side storage.
type Service struct {
	secretKey []byte
	ttl       time.Duration
	clock     clock.Clock
}

func NewService(secretKey string, ttl time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		clock:     clk,
	}
}

func (s *Service) Issue(subject uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secretKey)
}

func (s *Service) Validate(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failures.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
)

// Claims defines the claims carried by a session token. The subject is the user id.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// Issue signs a token for userID valid for the configured TTL.
	Issue(userID uuid.UUID) (string, error)

	// Verify returns the user id in token, or one of ErrTokenMalformed,
	// ErrTokenExpired, ErrTokenInvalidSignature.
	Verify(token string) (uuid.UUID, error)

	TTL() time.Duration
}

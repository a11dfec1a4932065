package usecase

import (
	"context"

	"style/internal/domain/entity"
)

// SessionUsecase resolves bearer tokens to live identities for the access guard.
type SessionUsecase interface {
	// Authenticate verifies token and loads its user. Any token failure is
	// ErrUnauthenticated; a deleted user is ErrUserNotFound.
	Authenticate(ctx context.Context, token string) (*entity.PublicUser, error)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"style/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login. User never carries the credential.
type AuthOutput struct {
	User  *entity.PublicUser `json:"user"`
	Token string             `json:"token"`
}

// AuthUsecase defines registration and login.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login fails with the same ErrInvalidCredentials for unknown emails and wrong passwords.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}

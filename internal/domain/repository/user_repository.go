// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"style/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the identity store operations.
// Lookups return domainerrors.ErrUserNotFound when no row matches; Create and Update
// surface unique violations on email or username as Conflict errors.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error

	// Update applies the set fields of update and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, update entity.UserUpdate) (*entity.User, error)

	// ExistsByProfileImageURL reports whether any user still references url.
	ExistsByProfileImageURL(ctx context.Context, url string) (bool, error)
}

package repository

import (
	"context"

	"style/internal/domain/entity"

	"github.com/google/uuid"
)

// CombinationRepository defines combination persistence.
// FindByID returns domainerrors.ErrCombinationNotFound when absent.
type CombinationRepository interface {
	Create(ctx context.Context, combination *entity.Combination) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Combination, error)

	// ListByUser returns the user's combinations, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Combination, error)

	// UpdateImages writes the non-empty references of images and returns the stored row.
	UpdateImages(ctx context.Context, id uuid.UUID, images entity.CombinationImages) (*entity.Combination, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByImageURL reports whether any combination still references url in either slot.
	ExistsByImageURL(ctx context.Context, url string) (bool, error)
}

package usecase

import (
	"context"

	"style/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCombinationInput requires both images. Empty Name falls back to the configured default.
type CreateCombinationInput struct {
	Name        string
	Description string
	Upper       *entity.ImageUpload
	Lower       *entity.ImageUpload
}

// ReplaceImagesInput replaces whichever slots are set; at least one is required.
type ReplaceImagesInput struct {
	Upper *entity.ImageUpload
	Lower *entity.ImageUpload
}

// Image returns the upload for role, or nil.
func (in ReplaceImagesInput) Image(role entity.ImageRole) *entity.ImageUpload {
	if role == entity.ImageRoleLower {
		return in.Lower
	}

	return in.Upper
}

// CombinationUsecase coordinates combinations with their stored images.
// Every operation on an id checks existence before ownership.
type CombinationUsecase interface {
	ListCombinations(ctx context.Context, userID uuid.UUID) ([]*entity.Combination, error)
	GetCombination(ctx context.Context, userID, combinationID uuid.UUID) (*entity.Combination, error)
	CreateCombination(ctx context.Context, userID uuid.UUID, input CreateCombinationInput) (*entity.Combination, error)
	DeleteCombination(ctx context.Context, userID, combinationID uuid.UUID) error
	ReplaceCombinationImages(ctx context.Context, userID, combinationID uuid.UUID, input ReplaceImagesInput) (*entity.Combination, error)
}

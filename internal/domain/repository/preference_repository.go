package repository

import (
	"context"

	"style/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceRepository stores one preference record per user.
// FindByUserID returns domainerrors.ErrPreferencesNotFound when absent.
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Preference, error)

	// Upsert creates the user's record from update, or applies update to the
	// existing one. Fields update leaves nil are never overwritten.
	Upsert(ctx context.Context, userID uuid.UUID, update entity.PreferenceUpdate) (*entity.Preference, error)

	// Update applies update to the existing record and returns it.
	Update(ctx context.Context, userID uuid.UUID, update entity.PreferenceUpdate) (*entity.Preference, error)
}

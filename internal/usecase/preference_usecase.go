package usecase

import (
	"context"

	"style/internal/domain/entity"

	"github.com/google/uuid"
)

// SavePreferencesInput sets the fields that are non-nil. A nil field keeps
// the stored answer, or stays empty on the first save.
type SavePreferencesInput struct {
	Gender         *string
	BodyType       *string
	BodyShape      *string
	MainStyle      *string
	FrequentPiece  *string
	PreferredColor *string
	StyleToAvoid   *string
	CommonOccasion *string
}

// PreferenceUsecase manages the per-user style questionnaire.
type PreferenceUsecase interface {
	// GetPreferences returns nil without error when the user never saved any.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.Preference, error)
	SavePreferences(ctx context.Context, userID uuid.UUID, input SavePreferencesInput) (*entity.Preference, error)
	// UpdatePreferences fails with ErrPreferencesNotFound when nothing was saved yet.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, update entity.PreferenceUpdate) (*entity.Preference, error)
}

package usecase

import (
	"context"

	"style/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput lists the editable profile fields. Nil or empty name and
// username mean "leave unchanged"; bio may be cleared with an empty string.
type UpdateProfileInput struct {
	Name     *string
	Username *string
	Bio      *string
}

// ProfileOutput bundles the public identity with its stored preferences.
// Preferences is nil when none were saved.
type ProfileOutput struct {
	User        *entity.PublicUser `json:"user"`
	Preferences *entity.Preference `json:"preferences"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.PublicUser, error)
	UploadProfileImage(ctx context.Context, userID uuid.UUID, image *entity.ImageUpload) (*entity.PublicUser, error)
}

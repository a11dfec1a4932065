package impl

import (
	"context"
	"log/slog"
	"strings"

	"style/config"
	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/constants"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/repository"
	"style/internal/domain/service"
	"style/internal/errors"
	"style/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo       repository.UserRepository
	preferenceRepo repository.PreferenceRepository
	images         *imageCoordinator
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PreferenceRepo repository.PreferenceRepository
	Storage        service.ObjectStorage
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:       params.UserRepo,
		preferenceRepo: params.PreferenceRepo,
		images:         newImageCoordinator(params.Storage, params.Publisher, maxImageSize(params.Config), params.Logger),
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the public identity along with its preferences, if any.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("user_id", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}

	preference, err := srv.preferenceRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrPreferencesNotFound) {
		return nil, errors.Wrap(err, "find preferences")
	}

	return &usecase.ProfileOutput{
		User:        user.Public(),
		Preferences: preference,
	}, nil
}

// UpdateProfile applies the provided fields. A username change is checked for
// collisions first; the unique constraint still has the final word.
func (srv *profileService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	input usecase.UpdateProfileInput,
) (*entity.PublicUser, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("user_id", userID))

	update := entity.UserUpdate{
		Name:     nonEmpty(input.Name),
		Username: nonEmpty(input.Username),
		Bio:      input.Bio,
	}

	if update.IsEmpty() {
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "find user")
		}

		return user.Public(), nil
	}

	if update.Username != nil {
		owner, err := srv.userRepo.FindByUsername(ctx, *update.Username)
		switch {
		case err == nil && owner.ID != userID:
			return nil, domainerrors.ErrUsernameAlreadyExists
		case err != nil && !errors.Is(err, domainerrors.ErrUserNotFound):
			return nil, errors.Wrap(err, "check username")
		}
	}

	user, err := srv.userRepo.Update(ctx, userID, update)
	if err != nil {
		return nil, errors.Wrap(err, "update user")
	}

	return user.Public(), nil
}

// UploadProfileImage stores a new profile picture and points the identity at it.
// The superseded picture is handed to the janitor.
func (srv *profileService) UploadProfileImage(
	ctx context.Context,
	userID uuid.UUID,
	image *entity.ImageUpload,
) (*entity.PublicUser, error) {
	if image == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}

	if err := srv.images.validate(image); err != nil {
		return nil, err
	}

	current, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}

	url, err := srv.images.upload(ctx, entity.BucketProfileImages, userID, entity.ImageRoleProfile, image)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.Update(ctx, userID, entity.UserUpdate{ProfileImageURL: &url})
	if err != nil {
		srv.images.announceOrphan(ctx, entity.BucketProfileImages, url, constants.OrphanReasonRowWriteFailed)

		return nil, errors.Wrap(err, "update profile image")
	}

	if previous := current.ProfileImageURL; previous != nil && *previous != url {
		srv.images.announceOrphan(ctx, entity.BucketProfileImages, *previous, constants.OrphanReasonReplaced)
	}

	srv.log(ctx).Info("Profile image updated", slog.Any("user_id", userID))

	return user.Public(), nil
}

// nonEmpty treats blank strings as absent.
func nonEmpty(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func maxImageSize(cfg *config.Config) int64 {
	if cfg == nil || cfg.Storage == nil {
		return 0
	}

	return cfg.Storage.MaxImageSize
}

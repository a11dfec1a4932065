package impl

import (
	"context"
	"log/slog"

	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/repository"
	"style/internal/errors"
	"style/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
	logger         *slog.Logger
}

// PreferenceServiceParams holds dependencies for PreferenceService, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	PreferenceRepo repository.PreferenceRepository
	Logger         *slog.Logger
}

func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		preferenceRepo: params.PreferenceRepo,
		logger:         params.Logger,
	}
}

func (srv *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *preferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.Preference, error) {
	preference, err := srv.preferenceRepo.FindByUserID(ctx, userID)
	if errors.Is(err, domainerrors.ErrPreferencesNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find preferences")
	}

	return preference, nil
}

func (srv *preferenceService) SavePreferences(
	ctx context.Context,
	userID uuid.UUID,
	input usecase.SavePreferencesInput,
) (*entity.Preference, error) {
	srv.log(ctx).Info("Saving preferences", slog.Any("user_id", userID))

	preference, err := srv.preferenceRepo.Upsert(ctx, userID, entity.PreferenceUpdate(input))
	if err != nil {
		return nil, errors.Wrap(err, "upsert preferences")
	}

	return preference, nil
}

func (srv *preferenceService) UpdatePreferences(
	ctx context.Context,
	userID uuid.UUID,
	update entity.PreferenceUpdate,
) (*entity.Preference, error) {
	if update.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no preference fields provided")
	}

	srv.log(ctx).Info("Updating preferences", slog.Any("user_id", userID))

	preference, err := srv.preferenceRepo.Update(ctx, userID, update)
	if err != nil {
		return nil, errors.Wrap(err, "update preferences")
	}

	return preference, nil
}

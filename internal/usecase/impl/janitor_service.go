package impl

import (
	"context"
	"log/slog"

	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/repository"
	"style/internal/domain/service"
	"style/internal/errors"
	"style/internal/usecase"

	"go.uber.org/fx"
)

// janitorService implements the JanitorUsecase interface.
type janitorService struct {
	userRepo        repository.UserRepository
	combinationRepo repository.CombinationRepository
	storage         service.ObjectStorage
	logger          *slog.Logger
}

// JanitorServiceParams holds dependencies for JanitorService, injected by Fx.
type JanitorServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	CombinationRepo repository.CombinationRepository
	Storage         service.ObjectStorage
	Logger          *slog.Logger
}

func NewJanitorService(params JanitorServiceParams) usecase.JanitorUsecase {
	return &janitorService{
		userRepo:        params.UserRepo,
		combinationRepo: params.CombinationRepo,
		storage:         params.Storage,
		logger:          params.Logger,
	}
}

func (srv *janitorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CollectOrphan deletes the announced object unless some row picked it up again.
func (srv *janitorService) CollectOrphan(ctx context.Context, event *service.OrphanedImageEvent) (bool, error) {
	if event == nil || event.URL == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("orphan event carries no url")
	}

	if !event.Bucket.IsValid() {
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown bucket " + event.Bucket.String())
	}

	logger := srv.log(ctx).With(
		slog.String("bucket", event.Bucket.String()),
		slog.String("url", event.URL),
		slog.String("reason", event.Reason),
	)

	key, err := srv.storage.KeyFromURL(event.Bucket, event.URL)
	if err != nil {
		logger.Warn("Orphan url is not ours, skipping")

		return false, nil
	}

	referenced, err := srv.isReferenced(ctx, event.Bucket, event.URL)
	if err != nil {
		return false, err
	}
	if referenced {
		logger.Info("Image is still referenced, keeping it")

		return false, nil
	}

	if err := srv.storage.Delete(ctx, event.Bucket, key); err != nil {
		return false, errors.Wrap(err, "delete orphaned image")
	}

	logger.Info("Orphaned image deleted")

	return true, nil
}

func (srv *janitorService) isReferenced(ctx context.Context, bucket entity.Bucket, url string) (bool, error) {
	switch bucket {
	case entity.BucketProfileImages:
		referenced, err := srv.userRepo.ExistsByProfileImageURL(ctx, url)
		if err != nil {
			return false, errors.Wrap(err, "check profile image reference")
		}

		return referenced, nil
	default:
		referenced, err := srv.combinationRepo.ExistsByImageURL(ctx, url)
		if err != nil {
			return false, errors.Wrap(err, "check combination image reference")
		}

		return referenced, nil
	}
}

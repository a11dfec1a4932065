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

const defaultCombinationName = "My combination"

// combinationService implements the CombinationUsecase interface. Rows are written
// only after every image they reference has been stored, and stored images are
// removed before the row that references them.
type combinationService struct {
	combinationRepo repository.CombinationRepository
	images          *imageCoordinator
	defaultName     string
	concealForeign  bool
	logger          *slog.Logger
}

// CombinationServiceParams holds dependencies for CombinationService, injected by Fx.
type CombinationServiceParams struct {
	fx.In

	CombinationRepo repository.CombinationRepository
	Storage         service.ObjectStorage
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCombinationService is the constructor for combinationService.
func NewCombinationService(params CombinationServiceParams) usecase.CombinationUsecase {
	srv := &combinationService{
		combinationRepo: params.CombinationRepo,
		images:          newImageCoordinator(params.Storage, params.Publisher, maxImageSize(params.Config), params.Logger),
		defaultName:     defaultCombinationName,
		logger:          params.Logger,
	}

	if params.Config != nil && params.Config.Combination != nil {
		if params.Config.Combination.DefaultName != "" {
			srv.defaultName = params.Config.Combination.DefaultName
		}
		srv.concealForeign = params.Config.Combination.ConcealForeign
	}

	return srv
}

func (srv *combinationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *combinationService) ListCombinations(ctx context.Context, userID uuid.UUID) ([]*entity.Combination, error) {
	combinations, err := srv.combinationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list combinations")
	}

	return combinations, nil
}

func (srv *combinationService) GetCombination(
	ctx context.Context,
	userID, combinationID uuid.UUID,
) (*entity.Combination, error) {
	return srv.loadOwned(ctx, userID, combinationID)
}

// CreateCombination uploads upper then lower and only then writes the row.
func (srv *combinationService) CreateCombination(
	ctx context.Context,
	userID uuid.UUID,
	input usecase.CreateCombinationInput,
) (*entity.Combination, error) {
	if input.Upper == nil || input.Lower == nil {
		return nil, domainerrors.ErrMissingImages
	}

	for _, image := range []*entity.ImageUpload{input.Upper, input.Lower} {
		if err := srv.images.validate(image); err != nil {
			return nil, err
		}
	}

	srv.log(ctx).Info("Creating combination", slog.Any("user_id", userID))

	upperURL, err := srv.images.upload(ctx, entity.BucketClothingImages, userID, entity.ImageRoleUpper, input.Upper)
	if err != nil {
		return nil, err
	}

	lowerURL, err := srv.images.upload(ctx, entity.BucketClothingImages, userID, entity.ImageRoleLower, input.Lower)
	if err != nil {
		srv.images.announceOrphan(ctx, entity.BucketClothingImages, upperURL, constants.OrphanReasonLowerUploadFailed)

		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = srv.defaultName
	}

	combination := &entity.Combination{
		UserID:        userID,
		Name:          name,
		Description:   input.Description,
		UpperImageURL: upperURL,
		LowerImageURL: lowerURL,
	}

	if err := srv.combinationRepo.Create(ctx, combination); err != nil {
		srv.images.announceOrphan(ctx, entity.BucketClothingImages, upperURL, constants.OrphanReasonRowWriteFailed)
		srv.images.announceOrphan(ctx, entity.BucketClothingImages, lowerURL, constants.OrphanReasonRowWriteFailed)

		return nil, errors.Wrap(err, "create combination")
	}

	srv.log(ctx).Info("Combination created", slog.Any("combination_id", combination.ID))

	return combination, nil
}

// DeleteCombination removes both stored images, then the row.
func (srv *combinationService) DeleteCombination(ctx context.Context, userID, combinationID uuid.UUID) error {
	combination, err := srv.loadOwned(ctx, userID, combinationID)
	if err != nil {
		return err
	}

	for _, role := range entity.CombinationImageRoles {
		if err := srv.images.remove(ctx, entity.BucketClothingImages, combination.ImageURL(role)); err != nil {
			return err
		}
	}

	if err := srv.combinationRepo.Delete(ctx, combinationID); err != nil {
		return errors.Wrap(err, "delete combination")
	}

	srv.log(ctx).Info("Combination deleted", slog.Any("combination_id", combinationID))

	return nil
}

// ReplaceCombinationImages retires the old object of each requested slot before
// uploading its replacement. When a later slot fails, the slots already replaced
// are still written so the row never points at a deleted object.
func (srv *combinationService) ReplaceCombinationImages(
	ctx context.Context,
	userID, combinationID uuid.UUID,
	input usecase.ReplaceImagesInput,
) (*entity.Combination, error) {
	if input.Upper == nil && input.Lower == nil {
		return nil, domainerrors.ErrNoImagesProvided
	}

	for _, role := range entity.CombinationImageRoles {
		if image := input.Image(role); image != nil {
			if err := srv.images.validate(image); err != nil {
				return nil, err
			}
		}
	}

	combination, err := srv.loadOwned(ctx, userID, combinationID)
	if err != nil {
		return nil, err
	}

	var staged entity.CombinationImages
	for _, role := range entity.CombinationImageRoles {
		image := input.Image(role)
		if image == nil {
			continue
		}

		if err := srv.replaceSlot(ctx, combination, role, image, &staged); err != nil {
			srv.salvage(ctx, combinationID, staged)

			return nil, err
		}
	}

	updated, err := srv.combinationRepo.UpdateImages(ctx, combinationID, staged)
	if err != nil {
		for _, url := range []string{staged.UpperImageURL, staged.LowerImageURL} {
			srv.images.announceOrphan(ctx, entity.BucketClothingImages, url, constants.OrphanReasonRowWriteFailed)
		}

		return nil, errors.Wrap(err, "update combination images")
	}

	srv.log(ctx).Info("Combination images replaced", slog.Any("combination_id", combinationID))

	return updated, nil
}

func (srv *combinationService) replaceSlot(
	ctx context.Context,
	combination *entity.Combination,
	role entity.ImageRole,
	image *entity.ImageUpload,
	staged *entity.CombinationImages,
) error {
	if err := srv.images.remove(ctx, entity.BucketClothingImages, combination.ImageURL(role)); err != nil {
		return err
	}

	url, err := srv.images.upload(ctx, entity.BucketClothingImages, combination.UserID, role, image)
	if err != nil {
		return err
	}
	staged.Set(role, url)

	return nil
}

// salvage persists whatever slots were replaced before a failure.
func (srv *combinationService) salvage(ctx context.Context, combinationID uuid.UUID, staged entity.CombinationImages) {
	if staged.IsEmpty() {
		return
	}

	if _, err := srv.combinationRepo.UpdateImages(ctx, combinationID, staged); err != nil {
		srv.log(ctx).Error("Failed to persist partially replaced images",
			slog.Any("combination_id", combinationID),
			slog.Any("error", err),
		)
		for _, url := range []string{staged.UpperImageURL, staged.LowerImageURL} {
			srv.images.announceOrphan(ctx, entity.BucketClothingImages, url, constants.OrphanReasonRowWriteFailed)
		}
	}
}

// loadOwned checks existence before ownership. With concealForeign set, a foreign
// combination is reported as missing.
func (srv *combinationService) loadOwned(
	ctx context.Context,
	userID, combinationID uuid.UUID,
) (*entity.Combination, error) {
	combination, err := srv.combinationRepo.FindByID(ctx, combinationID)
	if err != nil {
		return nil, errors.Wrap(err, "find combination")
	}

	if !combination.OwnedBy(userID) {
		srv.log(ctx).Warn("Combination accessed by non-owner",
			slog.Any("combination_id", combinationID),
			slog.Any("user_id", userID),
		)

		if srv.concealForeign {
			return nil, domainerrors.ErrCombinationNotFound
		}

		return nil, domainerrors.ErrCombinationForbidden
	}

	return combination, nil
}

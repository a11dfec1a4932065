package impl

import (
	"context"
	"strings"
	"testing"

	"style/config"
	"style/internal/domain/constants"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	mockRepo "style/internal/mocks/repository"
	mockSvc "style/internal/mocks/service"
	"style/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type combinationServiceFixtures struct {
	service   usecase.CombinationUsecase
	repo      *mockRepo.MockCombinationRepository
	storage   *mockSvc.MockObjectStorage
	publisher *mockSvc.MockEventPublisher
}

func createTestCombinationService(t *testing.T, cfg *config.Config) combinationServiceFixtures {
	fx := combinationServiceFixtures{
		repo:      mockRepo.NewMockCombinationRepository(t),
		storage:   mockSvc.NewMockObjectStorage(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewCombinationService(CombinationServiceParams{
		CombinationRepo: fx.repo,
		Storage:         fx.storage,
		Publisher:       fx.publisher,
		Config:          cfg,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func keyWithRole(role entity.ImageRole) any {
	return mock.MatchedBy(func(key string) bool {
		return strings.Contains(key, "-"+role.String()+"-") && strings.HasSuffix(key, ".jpg")
	})
}

func TestCombinationService_Create_Success(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	userID := uuid.New()

	fx.storage.EXPECT().
		Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleUpper), mock.Anything, "image/jpeg").
		Return("url-upper", nil).Once()
	fx.storage.EXPECT().
		Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleLower), mock.Anything, "image/jpeg").
		Return("url-lower", nil).Once()
	fx.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Combination) bool {
			return c.UserID == userID && c.UpperImageURL == "url-upper" && c.LowerImageURL == "url-lower"
		})).
		Return(nil)

	combination, err := fx.service.CreateCombination(ctx, userID, usecase.CreateCombinationInput{
		Upper: jpegUpload("shirt"),
		Lower: jpegUpload("jeans"),
	})

	require.NoError(t, err)
	assert.Equal(t, "My combination", combination.Name)
	assert.Equal(t, "url-upper", combination.UpperImageURL)
	assert.Equal(t, "url-lower", combination.LowerImageURL)
}

func TestCombinationService_Create_MissingImageUploadsNothing(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())

	_, err := fx.service.CreateCombination(context.Background(), uuid.New(), usecase.CreateCombinationInput{
		Upper: jpegUpload("shirt"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrMissingImages)
	assert.Equal(t, domainerrors.KindInvalidInput, domainerrors.KindOf(err))
	fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCombinationService_Create_InvalidLowerRejectedBeforeUpload(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())

	_, err := fx.service.CreateCombination(context.Background(), uuid.New(), usecase.CreateCombinationInput{
		Upper: jpegUpload("shirt"),
		Lower: &entity.ImageUpload{Data: []byte("x"), ContentType: "text/plain", Filename: "notes.txt"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
	fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCombinationService_Create_LowerUploadFails(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()

	fx.storage.EXPECT().
		Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleUpper), mock.Anything, "image/jpeg").
		Return("url-upper", nil).Once()
	fx.storage.EXPECT().
		Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleLower), mock.Anything, "image/jpeg").
		Return("", errors.New("bucket unavailable")).Once()
	fx.publisher.EXPECT().
		PublishOrphanedImage(ctx, orphanFor("url-upper", constants.OrphanReasonLowerUploadFailed)).
		Return(nil)

	_, err := fx.service.CreateCombination(ctx, uuid.New(), usecase.CreateCombinationInput{
		Upper: jpegUpload("shirt"),
		Lower: jpegUpload("jeans"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCombinationService_Create_RowFailureOrphansBoth(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()

	fx.storage.EXPECT().Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleUpper), mock.Anything, mock.Anything).Return("url-upper", nil)
	fx.storage.EXPECT().Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleLower), mock.Anything, mock.Anything).Return("url-lower", nil)
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))
	fx.publisher.EXPECT().PublishOrphanedImage(ctx, orphanFor("url-upper", constants.OrphanReasonRowWriteFailed)).Return(nil)
	fx.publisher.EXPECT().PublishOrphanedImage(ctx, orphanFor("url-lower", constants.OrphanReasonRowWriteFailed)).Return(errors.New("publish failed"))

	_, err := fx.service.CreateCombination(ctx, uuid.New(), usecase.CreateCombinationInput{
		Name:  "Friday",
		Upper: jpegUpload("shirt"),
		Lower: jpegUpload("jeans"),
	})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestCombinationService_Get_OwnershipOrder(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	existing := &entity.Combination{ID: uuid.New(), UserID: owner}
	missingID := uuid.New()

	t.Run("missing is not found", func(t *testing.T) {
		fx := createTestCombinationService(t, newTestConfig())
		fx.repo.EXPECT().FindByID(ctx, missingID).Return(nil, domainerrors.ErrCombinationNotFound)

		_, err := fx.service.GetCombination(ctx, stranger, missingID)

		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})

	t.Run("foreign is forbidden", func(t *testing.T) {
		fx := createTestCombinationService(t, newTestConfig())
		fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

		_, err := fx.service.GetCombination(ctx, stranger, existing.ID)

		assert.ErrorIs(t, err, domainerrors.ErrCombinationForbidden)
		assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
	})

	t.Run("foreign is concealed when configured", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Combination.ConcealForeign = true
		fx := createTestCombinationService(t, cfg)
		fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

		_, err := fx.service.GetCombination(ctx, stranger, existing.ID)

		assert.ErrorIs(t, err, domainerrors.ErrCombinationNotFound)
	})

	t.Run("owner gets it", func(t *testing.T) {
		fx := createTestCombinationService(t, newTestConfig())
		fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

		combination, err := fx.service.GetCombination(ctx, owner, existing.ID)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, combination.ID)
	})
}

func TestCombinationService_Delete_ByStrangerTouchesNothing(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	existing := &entity.Combination{ID: uuid.New(), UserID: uuid.New(), UpperImageURL: "u", LowerImageURL: "l"}

	fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	err := fx.service.DeleteCombination(ctx, uuid.New(), existing.ID)

	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	fx.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCombinationService_Delete_StorageBeforeRow(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Combination{ID: uuid.New(), UserID: owner, UpperImageURL: "url-upper", LowerImageURL: "url-lower"}

	var order []string
	fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, "url-upper").Return("k-upper", nil)
	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, "url-lower").Return("k-lower", nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.Bucket, key string) error {
			order = append(order, key)

			return nil
		}).Twice()
	fx.repo.EXPECT().Delete(ctx, existing.ID).
		RunAndReturn(func(context.Context, uuid.UUID) error {
			order = append(order, "row")

			return nil
		})

	err := fx.service.DeleteCombination(ctx, owner, existing.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"k-upper", "k-lower", "row"}, order)
}

func TestCombinationService_Delete_StorageFailureKeepsRow(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Combination{ID: uuid.New(), UserID: owner, UpperImageURL: "url-upper", LowerImageURL: "url-lower"}

	fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, "url-upper").Return("k-upper", nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, "k-upper").Return(errors.New("timeout"))

	err := fx.service.DeleteCombination(ctx, owner, existing.ID)

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	fx.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCombinationService_Replace_RequiresAnImage(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())

	_, err := fx.service.ReplaceCombinationImages(context.Background(), uuid.New(), uuid.New(), usecase.ReplaceImagesInput{})

	assert.ErrorIs(t, err, domainerrors.ErrNoImagesProvided)
}

func TestCombinationService_Replace_UpperOnly(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Combination{ID: uuid.New(), UserID: owner, UpperImageURL: "old-upper", LowerImageURL: "old-lower"}

	fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, "old-upper").Return("k-old-upper", nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, "k-old-upper").Return(nil)
	fx.storage.EXPECT().Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleUpper), mock.Anything, "image/jpeg").Return("new-upper", nil)
	fx.repo.EXPECT().
		UpdateImages(ctx, existing.ID, entity.CombinationImages{UpperImageURL: "new-upper"}).
		Return(&entity.Combination{ID: existing.ID, UserID: owner, UpperImageURL: "new-upper", LowerImageURL: "old-lower"}, nil)

	combination, err := fx.service.ReplaceCombinationImages(ctx, owner, existing.ID, usecase.ReplaceImagesInput{
		Upper: jpegUpload("new-shirt"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new-upper", combination.UpperImageURL)
	assert.Equal(t, "old-lower", combination.LowerImageURL)
}

func TestCombinationService_Replace_OldDeleteFailureAbortsSlot(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Combination{ID: uuid.New(), UserID: owner, UpperImageURL: "old-upper", LowerImageURL: "old-lower"}

	fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, "old-upper").Return("k-old-upper", nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, "k-old-upper").Return(errors.New("denied"))

	_, err := fx.service.ReplaceCombinationImages(ctx, owner, existing.ID, usecase.ReplaceImagesInput{
		Upper: jpegUpload("new-shirt"),
		Lower: jpegUpload("new-jeans"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.repo.AssertNotCalled(t, "UpdateImages", mock.Anything, mock.Anything, mock.Anything)
}

func TestCombinationService_Replace_SalvagesCompletedSlots(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Combination{ID: uuid.New(), UserID: owner, UpperImageURL: "old-upper", LowerImageURL: "old-lower"}

	fx.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, "old-upper").Return("k-old-upper", nil)
	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, "old-lower").Return("k-old-lower", nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, "k-old-upper").Return(nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, "k-old-lower").Return(errors.New("denied"))
	fx.storage.EXPECT().Put(ctx, entity.BucketClothingImages, keyWithRole(entity.ImageRoleUpper), mock.Anything, "image/jpeg").Return("new-upper", nil)
	fx.repo.EXPECT().
		UpdateImages(ctx, existing.ID, entity.CombinationImages{UpperImageURL: "new-upper"}).
		Return(&entity.Combination{ID: existing.ID}, nil)

	_, err := fx.service.ReplaceCombinationImages(ctx, owner, existing.ID, usecase.ReplaceImagesInput{
		Upper: jpegUpload("new-shirt"),
		Lower: jpegUpload("new-jeans"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestCombinationService_List(t *testing.T) {
	fx := createTestCombinationService(t, newTestConfig())
	ctx := context.Background()
	owner := uuid.New()
	stored := []*entity.Combination{{ID: uuid.New(), UserID: owner}, {ID: uuid.New(), UserID: owner}}

	fx.repo.EXPECT().ListByUser(ctx, owner).Return(stored, nil)

	combinations, err := fx.service.ListCombinations(ctx, owner)

	require.NoError(t, err)
	assert.Len(t, combinations, 2)
}

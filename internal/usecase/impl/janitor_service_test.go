package impl

import (
	"context"
	"testing"

	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/service"
	mockRepo "style/internal/mocks/repository"
	mockSvc "style/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type janitorServiceFixtures struct {
	srv             *janitorService
	userRepo        *mockRepo.MockUserRepository
	combinationRepo *mockRepo.MockCombinationRepository
	storage         *mockSvc.MockObjectStorage
}

func createTestJanitorService(t *testing.T) janitorServiceFixtures {
	fx := janitorServiceFixtures{
		userRepo:        mockRepo.NewMockUserRepository(t),
		combinationRepo: mockRepo.NewMockCombinationRepository(t),
		storage:         mockSvc.NewMockObjectStorage(t),
	}

	fx.srv = NewJanitorService(JanitorServiceParams{
		UserRepo:        fx.userRepo,
		CombinationRepo: fx.combinationRepo,
		Storage:         fx.storage,
		Logger:          newDiscardLogger(),
	}).(*janitorService)

	return fx
}

func TestJanitorService_CollectOrphan_DeletesUnreferenced(t *testing.T) {
	fx := createTestJanitorService(t)
	ctx := context.Background()
	event := &service.OrphanedImageEvent{Bucket: entity.BucketClothingImages, URL: "u/clothing-images/k.jpg"}

	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, event.URL).Return("k.jpg", nil)
	fx.combinationRepo.EXPECT().ExistsByImageURL(ctx, event.URL).Return(false, nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, "k.jpg").Return(nil)

	deleted, err := fx.srv.CollectOrphan(ctx, event)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestJanitorService_CollectOrphan_KeepsReferencedProfileImage(t *testing.T) {
	fx := createTestJanitorService(t)
	ctx := context.Background()
	event := &service.OrphanedImageEvent{Bucket: entity.BucketProfileImages, URL: "u/profile-images/p.png"}

	fx.storage.EXPECT().KeyFromURL(entity.BucketProfileImages, event.URL).Return("p.png", nil)
	fx.userRepo.EXPECT().ExistsByProfileImageURL(ctx, event.URL).Return(true, nil)

	deleted, err := fx.srv.CollectOrphan(ctx, event)

	require.NoError(t, err)
	assert.False(t, deleted)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestJanitorService_CollectOrphan_ForeignURL(t *testing.T) {
	fx := createTestJanitorService(t)
	event := &service.OrphanedImageEvent{Bucket: entity.BucketClothingImages, URL: "https://elsewhere/x.jpg"}

	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, event.URL).Return("", service.ErrObjectNotFound)

	deleted, err := fx.srv.CollectOrphan(context.Background(), event)

	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestJanitorService_CollectOrphan_InvalidEvents(t *testing.T) {
	fx := createTestJanitorService(t)

	for _, event := range []*service.OrphanedImageEvent{
		nil,
		{Bucket: entity.BucketClothingImages},
		{Bucket: "avatars", URL: "x"},
	} {
		_, err := fx.srv.CollectOrphan(context.Background(), event)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestJanitorService_CollectOrphan_DeleteFailureIsReturned(t *testing.T) {
	fx := createTestJanitorService(t)
	ctx := context.Background()
	event := &service.OrphanedImageEvent{Bucket: entity.BucketClothingImages, URL: "u/clothing-images/k.jpg"}

	fx.storage.EXPECT().KeyFromURL(entity.BucketClothingImages, event.URL).Return("k.jpg", nil)
	fx.combinationRepo.EXPECT().ExistsByImageURL(ctx, event.URL).Return(false, nil)
	fx.storage.EXPECT().Delete(ctx, entity.BucketClothingImages, "k.jpg").Return(errors.New("throttled"))

	deleted, err := fx.srv.CollectOrphan(ctx, event)

	require.Error(t, err)
	assert.False(t, deleted)
}

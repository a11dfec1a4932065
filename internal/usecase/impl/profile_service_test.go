package impl

import (
	"context"
	"testing"

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

type profileServiceFixtures struct {
	service        usecase.ProfileUsecase
	userRepo       *mockRepo.MockUserRepository
	preferenceRepo *mockRepo.MockPreferenceRepository
	storage        *mockSvc.MockObjectStorage
	publisher      *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		preferenceRepo: mockRepo.NewMockPreferenceRepository(t),
		storage:        mockSvc.NewMockObjectStorage(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewProfileService(ProfileServiceParams{
		UserRepo:       fx.userRepo,
		PreferenceRepo: fx.preferenceRepo,
		Storage:        fx.storage,
		Publisher:      fx.publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func ptr(s string) *string {
	return &s
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ana", PasswordHash: "hashed"}
	preference := &entity.Preference{UserID: user.ID, MainStyle: "casual"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.preferenceRepo.EXPECT().FindByUserID(ctx, user.ID).Return(preference, nil)

	profile, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.User.Name)
	assert.Equal(t, "casual", profile.Preferences.MainStyle)
}

func TestProfileService_GetProfile_WithoutPreferences(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.preferenceRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, domainerrors.ErrPreferencesNotFound)

	profile, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Nil(t, profile.Preferences)
}

func TestProfileService_UpdateProfile_BlankFieldsAreIgnored(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		Update(ctx, userID, mock.MatchedBy(func(u entity.UserUpdate) bool {
			return u.Name == nil && u.Username == nil && u.Bio != nil && *u.Bio == ""
		})).
		Return(&entity.User{ID: userID, Bio: ""}, nil)

	user, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		Name:     ptr(" "),
		Username: ptr(""),
		Bio:      ptr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestProfileService_UpdateProfile_UsernameTaken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, "taken").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Username: ptr("taken")})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
}

func TestProfileService_UpdateProfile_KeepOwnUsername(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ana_1").Return(&entity.User{ID: userID}, nil)
	fx.userRepo.EXPECT().Update(ctx, userID, mock.Anything).Return(&entity.User{ID: userID, Username: "ana_1"}, nil)

	user, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Username: ptr("ana_1")})

	require.NoError(t, err)
	assert.Equal(t, "ana_1", user.Username)
}

func TestProfileService_UploadProfileImage_AnnouncesPrevious(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	oldURL := "mem://local/profile-images/old.jpg"
	newURL := "mem://local/profile-images/new.jpg"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, ProfileImageURL: &oldURL}, nil)
	fx.storage.EXPECT().
		Put(ctx, entity.BucketProfileImages, mock.Anything, mock.Anything, "image/jpeg").
		Return(newURL, nil)
	fx.userRepo.EXPECT().
		Update(ctx, userID, mock.MatchedBy(func(u entity.UserUpdate) bool {
			return u.ProfileImageURL != nil && *u.ProfileImageURL == newURL
		})).
		Return(&entity.User{ID: userID, ProfileImageURL: &newURL}, nil)
	fx.publisher.EXPECT().PublishOrphanedImage(ctx, orphanFor(oldURL, constants.OrphanReasonReplaced)).Return(nil)

	user, err := fx.service.UploadProfileImage(ctx, userID, jpegUpload("me"))

	require.NoError(t, err)
	assert.Equal(t, newURL, *user.ProfileImageURL)
}

func TestProfileService_UploadProfileImage_RowFailureOrphansUpload(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	newURL := "mem://local/profile-images/new.jpg"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.storage.EXPECT().Put(ctx, entity.BucketProfileImages, mock.Anything, mock.Anything, "image/jpeg").Return(newURL, nil)
	fx.userRepo.EXPECT().Update(ctx, userID, mock.Anything).Return(nil, errors.New("db down"))
	fx.publisher.EXPECT().PublishOrphanedImage(ctx, orphanFor(newURL, constants.OrphanReasonRowWriteFailed)).Return(nil)

	_, err := fx.service.UploadProfileImage(ctx, userID, jpegUpload("me"))

	require.Error(t, err)
}

func TestProfileService_UploadProfileImage_RejectsBeforeStorage(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		image *entity.ImageUpload
		want  error
	}{
		{"missing", nil, domainerrors.ErrValidationFailed},
		{"pdf", &entity.ImageUpload{Data: []byte("%PDF"), ContentType: "application/pdf", Filename: "cv.pdf"}, domainerrors.ErrUnsupportedImageType},
		{"too large", &entity.ImageUpload{Data: make([]byte, 2<<10), ContentType: "image/png", Filename: "big.png"}, domainerrors.ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.UploadProfileImage(ctx, uuid.New(), tt.image)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, domainerrors.KindInvalidInput, domainerrors.KindOf(err))
		})
	}
}

package postgres

import (
	"context"

	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/repository"
	"style/internal/errors"
	"style/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(where, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists user and fills in the generated id and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return userConflictError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, update entity.UserUpdate) (*entity.User, error) {
	if update.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Username != nil {
		updates["username"] = *update.Username
	}
	if update.Bio != nil {
		updates["bio"] = *update.Bio
	}
	if update.ProfileImageURL != nil {
		updates["profile_image_url"] = *update.ProfileImageURL
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, userConflictError(result.Error)
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *userRepository) ExistsByProfileImageURL(ctx context.Context, url string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("profile_image_url = ?", url).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to count users by profile image")
	}

	return count > 0, nil
}

// userConflictError maps a unique violation on users to the field that collided.
// A translated gorm.ErrDuplicatedKey carries no constraint name and reports the email.
func userConflictError(err error) error {
	switch violatedConstraint(err) {
	case constraintUsersUsername:
		return domainerrors.ErrUsernameAlreadyExists
	case constraintUsersEmail:
		return domainerrors.ErrEmailAlreadyExists
	default:
		return domainerrors.ErrEmailAlreadyExists
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:              userM.ID,
		Email:           userM.Email,
		Username:        userM.Username,
		Name:            userM.Name,
		PasswordHash:    userM.PasswordHash,
		Bio:             userM.Bio,
		ProfileImageURL: userM.ProfileImageURL,
		CreatedAt:       userM.CreatedAt,
		UpdatedAt:       userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:              user.ID,
		Email:           user.Email,
		Username:        user.Username,
		Name:            user.Name,
		PasswordHash:    user.PasswordHash,
		Bio:             user.Bio,
		ProfileImageURL: user.ProfileImageURL,
	}
}

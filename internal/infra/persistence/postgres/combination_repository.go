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

type combinationRepository struct {
	db *gorm.DB
}

// NewCombinationRepository is the constructor for combinationRepository.
func NewCombinationRepository(db *gorm.DB) repository.CombinationRepository {
	return &combinationRepository{db: db}
}

func (repo *combinationRepository) Create(ctx context.Context, combination *entity.Combination) error {
	combinationM := fromCombinationDomain(combination)

	if err := repo.db.WithContext(ctx).Create(combinationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("combination owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create combination")
	}

	combination.ID = combinationM.ID
	combination.CreatedAt = combinationM.CreatedAt
	combination.UpdatedAt = combinationM.UpdatedAt

	return nil
}

func (repo *combinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Combination, error) {
	var combinationM model.CombinationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&combinationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCombinationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find combination")
	}

	return toCombinationDomain(&combinationM), nil
}

func (repo *combinationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Combination, error) {
	var combinationModels []*model.CombinationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&combinationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list combinations")
	}

	combinations := make([]*entity.Combination, 0, len(combinationModels))
	for _, combinationM := range combinationModels {
		combinations = append(combinations, toCombinationDomain(combinationM))
	}

	return combinations, nil
}

func (repo *combinationRepository) UpdateImages(ctx context.Context, id uuid.UUID, images entity.CombinationImages) (*entity.Combination, error) {
	updates := map[string]any{}
	if images.UpperImageURL != "" {
		updates["upper_image_url"] = images.UpperImageURL
	}
	if images.LowerImageURL != "" {
		updates["lower_image_url"] = images.LowerImageURL
	}
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CombinationModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update combination images")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrCombinationNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *combinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CombinationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete combination")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCombinationNotFound
	}

	return nil
}

func (repo *combinationRepository) ExistsByImageURL(ctx context.Context, url string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CombinationModel{}).
		Where("upper_image_url = ? OR lower_image_url = ?", url, url).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to count combinations by image")
	}

	return count > 0, nil
}

func toCombinationDomain(combinationM *model.CombinationModel) *entity.Combination {
	return &entity.Combination{
		ID:            combinationM.ID,
		UserID:        combinationM.UserID,
		Name:          combinationM.Name,
		Description:   combinationM.Description,
		UpperImageURL: combinationM.UpperImageURL,
		LowerImageURL: combinationM.LowerImageURL,
		CreatedAt:     combinationM.CreatedAt,
		UpdatedAt:     combinationM.UpdatedAt,
	}
}

func fromCombinationDomain(combination *entity.Combination) *model.CombinationModel {
	return &model.CombinationModel{
		ID:            combination.ID,
		UserID:        combination.UserID,
		Name:          combination.Name,
		Description:   combination.Description,
		UpperImageURL: combination.UpperImageURL,
		LowerImageURL: combination.LowerImageURL,
	}
}

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
	"gorm.io/gorm/clause"
)

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (repo *preferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Preference, error) {
	var preferenceM model.PreferenceModel

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&preferenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPreferencesNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find preferences")
	}

	return toPreferenceDomain(&preferenceM), nil
}

// Upsert relies on preferences_user_id_key to turn a second save into an update
// of only the columns update sets.
func (repo *preferenceRepository) Upsert(ctx context.Context, userID uuid.UUID, update entity.PreferenceUpdate) (*entity.Preference, error) {
	preference := &entity.Preference{UserID: userID}
	update.Apply(preference)
	preferenceM := fromPreferenceDomain(preference)

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}
	if columns := preferenceColumns(update); len(columns) > 0 {
		onConflict.DoNothing = false
		onConflict.DoUpdates = clause.AssignmentColumns(append(columns, "updated_at"))
	}

	if err := repo.db.WithContext(ctx).Clauses(onConflict).Create(preferenceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("preference owner does not exist")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save preferences")
	}

	return repo.FindByUserID(ctx, userID)
}

func (repo *preferenceRepository) Update(ctx context.Context, userID uuid.UUID, update entity.PreferenceUpdate) (*entity.Preference, error) {
	current, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return current, nil
	}

	update.Apply(current)
	preferenceM := fromPreferenceDomain(current)

	if err := repo.db.WithContext(ctx).
		Model(&model.PreferenceModel{}).
		Where("user_id = ?", userID).
		Select(preferenceColumns(update)).
		Updates(preferenceM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update preferences")
	}

	return repo.FindByUserID(ctx, userID)
}

// preferenceColumns names the columns behind the fields update sets.
func preferenceColumns(update entity.PreferenceUpdate) []string {
	var columns []string
	add := func(field *string, column string) {
		if field != nil {
			columns = append(columns, column)
		}
	}

	add(update.Gender, "gender")
	add(update.BodyType, "body_type")
	add(update.BodyShape, "body_shape")
	add(update.MainStyle, "main_style")
	add(update.FrequentPiece, "frequent_piece")
	add(update.PreferredColor, "preferred_color")
	add(update.StyleToAvoid, "style_to_avoid")
	add(update.CommonOccasion, "common_occasion")

	return columns
}

func toPreferenceDomain(preferenceM *model.PreferenceModel) *entity.Preference {
	return &entity.Preference{
		ID:             preferenceM.ID,
		UserID:         preferenceM.UserID,
		Gender:         preferenceM.Gender,
		BodyType:       preferenceM.BodyType,
		BodyShape:      preferenceM.BodyShape,
		MainStyle:      preferenceM.MainStyle,
		FrequentPiece:  preferenceM.FrequentPiece,
		PreferredColor: preferenceM.PreferredColor,
		StyleToAvoid:   preferenceM.StyleToAvoid,
		CommonOccasion: preferenceM.CommonOccasion,
		CreatedAt:      preferenceM.CreatedAt,
		UpdatedAt:      preferenceM.UpdatedAt,
	}
}

func fromPreferenceDomain(preference *entity.Preference) *model.PreferenceModel {
	return &model.PreferenceModel{
		ID:             preference.ID,
		UserID:         preference.UserID,
		Gender:         preference.Gender,
		BodyType:       preference.BodyType,
		BodyShape:      preference.BodyShape,
		MainStyle:      preference.MainStyle,
		FrequentPiece:  preference.FrequentPiece,
		PreferredColor: preference.PreferredColor,
		StyleToAvoid:   preference.StyleToAvoid,
		CommonOccasion: preference.CommonOccasion,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceModel mirrors the 'preferences' table. One row per user.
type PreferenceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:preferences_user_id_key"`
	Gender         string    `gorm:"type:varchar(50);not null;default:''"`
	BodyType       string    `gorm:"type:varchar(50);not null;default:''"`
	BodyShape      string    `gorm:"type:varchar(50);not null;default:''"`
	MainStyle      string    `gorm:"type:varchar(100);not null;default:''"`
	FrequentPiece  string    `gorm:"type:varchar(100);not null;default:''"`
	PreferredColor string    `gorm:"type:varchar(100);not null;default:''"`
	StyleToAvoid   string    `gorm:"type:varchar(100);not null;default:''"`
	CommonOccasion string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "preferences"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// CombinationModel mirrors the 'combinations' table.
type CombinationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text;not null;default:''"`
	UpperImageURL string    `gorm:"column:upper_image_url;type:text;not null"`
	LowerImageURL string    `gorm:"column:lower_image_url;type:text;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CombinationModel) TableName() string {
	return "combinations"
}

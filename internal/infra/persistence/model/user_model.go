package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table created by migrations/00001_init.sql.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	Username        string    `gorm:"type:varchar(50);uniqueIndex:users_username_key;not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	PasswordHash    string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Bio             string    `gorm:"type:text;not null;default:''"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash never leaves the service layer;
// anything returned to a caller goes through Public.
type User struct {
	ID              uuid.UUID
	Email           string
	Username        string
	Name            string
	PasswordHash    string
	Bio             string
	ProfileImageURL *string // nil until the first profile image upload
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PublicUser is the credential-free projection of a User.
type PublicUser struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	ProfileImageURL *string   `json:"profileImage"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Public builds the projection field by field so new sensitive fields are excluded by default.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:              u.ID,
		Email:           u.Email,
		Username:        u.Username,
		Name:            u.Name,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// UserUpdate lists the profile fields that may change. Nil means untouched.
type UserUpdate struct {
	Name            *string
	Username        *string
	Bio             *string
	ProfileImageURL *string
}

// IsEmpty reports whether the update carries no change.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Username == nil && u.Bio == nil && u.ProfileImageURL == nil
}

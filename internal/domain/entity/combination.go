package entity

import (
	"time"

	"github.com/google/uuid"
)

// Combination pairs an upper and a lower garment image owned by one user.
type Combination struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	UpperImageURL string    `json:"upperImage"`
	LowerImageURL string    `json:"lowerImage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the combination.
func (c *Combination) OwnedBy(userID uuid.UUID) bool {
	return c != nil && c.UserID == userID
}

// ImageURL returns the reference held for role.
func (c *Combination) ImageURL(role ImageRole) string {
	if role == ImageRoleLower {
		return c.LowerImageURL
	}

	return c.UpperImageURL
}

// CombinationImages carries the image references staged by a replace.
// Empty strings leave the current reference in place.
type CombinationImages struct {
	UpperImageURL string
	LowerImageURL string
}

// Set stages url for role.
func (i *CombinationImages) Set(role ImageRole, url string) {
	if role == ImageRoleLower {
		i.LowerImageURL = url

		return
	}
	i.UpperImageURL = url
}

// IsEmpty reports whether nothing was staged.
func (i CombinationImages) IsEmpty() bool {
	return i.UpperImageURL == "" && i.LowerImageURL == ""
}

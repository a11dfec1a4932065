package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preference holds the style questionnaire answers of a user. One record per user.
type Preference struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Gender         string    `json:"gender"`
	BodyType       string    `json:"bodyType"`
	BodyShape      string    `json:"bodyShape"`
	MainStyle      string    `json:"mainStyle"`
	FrequentPiece  string    `json:"frequentPiece"`
	PreferredColor string    `json:"preferredColor"`
	StyleToAvoid   string    `json:"styleToAvoid"`
	CommonOccasion string    `json:"commonOccasion"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PreferenceUpdate is the closed set of fields a partial update may touch.
type PreferenceUpdate struct {
	Gender         *string
	BodyType       *string
	BodyShape      *string
	MainStyle      *string
	FrequentPiece  *string
	PreferredColor *string
	StyleToAvoid   *string
	CommonOccasion *string
}

// IsEmpty reports whether the update carries no change.
func (u PreferenceUpdate) IsEmpty() bool {
	return u.Gender == nil && u.BodyType == nil && u.BodyShape == nil && u.MainStyle == nil &&
		u.FrequentPiece == nil && u.PreferredColor == nil && u.StyleToAvoid == nil && u.CommonOccasion == nil
}

// Apply copies every set field onto p.
func (u PreferenceUpdate) Apply(p *Preference) {
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	assign(&p.Gender, u.Gender)
	assign(&p.BodyType, u.BodyType)
	assign(&p.BodyShape, u.BodyShape)
	assign(&p.MainStyle, u.MainStyle)
	assign(&p.FrequentPiece, u.FrequentPiece)
	assign(&p.PreferredColor, u.PreferredColor)
	assign(&p.StyleToAvoid, u.StyleToAvoid)
	assign(&p.CommonOccasion, u.CommonOccasion)
}

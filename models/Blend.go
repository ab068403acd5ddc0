package models

import (
	"gorm.io/gorm"
)

// Blend is one saved generation. Saves are append-only: re-saving under the
// same key creates a new row with an incremented version and flips IsLatest
// on the previous one.
type Blend struct {
	gorm.Model
	Key           string `gorm:"index;not null" json:"key"`
	Name          string `gorm:"not null" json:"name"`
	Version       int    `gorm:"not null;default:1" json:"version"`
	IsLatest      bool   `gorm:"not null;default:true" json:"is_latest"`
	ParentBlendID *uint  `json:"parent_blend_id"`

	Dominant   string `gorm:"not null" json:"dominant"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Identifier string `gorm:"not null" json:"identifier"`

	Concentration string `json:"concentration"`
	Occasion      string `json:"occasion"`
	Intensity     string `json:"intensity"`

	SteepingCategory string `json:"steeping_category"`
	SteepingMinDays  int    `json:"steeping_min_days"`
	SteepingMaxDays  int    `json:"steeping_max_days"`

	Notes    string `gorm:"type:text" json:"notes"`
	Warnings string `gorm:"type:text" json:"warnings"`

	OwnerID uint  `gorm:"not null" json:"owner_id"`
	Owner   *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	Ingredients []BlendIngredient `gorm:"foreignKey:BlendID" json:"ingredients"`
}

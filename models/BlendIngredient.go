package models

import (
	"gorm.io/gorm"
)

// BlendIngredient is one material line of a saved blend, denormalized from
// the catalog at save time so old versions stay readable even if the catalog
// changes underneath them.
type BlendIngredient struct {
	gorm.Model
	BlendID uint `gorm:"not null" json:"blend_id"` // Parent Blend

	Family         string  `gorm:"not null" json:"family"`
	Layer          string  `gorm:"not null" json:"layer"`
	IngredientName string  `gorm:"not null" json:"ingredient_name"`
	PercentLow     float64 `json:"percent_low"`
	PercentHigh    float64 `json:"percent_high"`
	Supplier       string  `json:"supplier"`
}

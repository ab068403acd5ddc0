package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents an application account that can authenticate with the platform.
type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	Name          string
	Concentration string `gorm:"type:varchar(32);default:'eau de parfum'"`
	Intensity     string `gorm:"type:varchar(32);default:'room presence'"`
}

// Composer preference values recognized by the workspace.
const (
	ConcentrationExtrait       = "extrait"
	ConcentrationEauDeParfum   = "eau de parfum"
	ConcentrationEauDeToilette = "eau de toilette"
	ConcentrationEauFraiche    = "eau fraiche"

	IntensityTrail  = "leave a trail"
	IntensityRoom   = "room presence"
	IntensitySkin   = "skin scent"
	IntensitySubtle = "subtle aura"

	DefaultConcentration = ConcentrationEauDeParfum
	DefaultIntensity     = IntensityRoom
)

// ValidConcentration reports whether the value names a known tier.
func ValidConcentration(value string) bool {
	switch value {
	case ConcentrationExtrait, ConcentrationEauDeParfum, ConcentrationEauDeToilette, ConcentrationEauFraiche:
		return true
	}
	return false
}

// NormalizeConcentration lowercases and trims the value, falling back to the
// default tier if it is not recognized.
func NormalizeConcentration(value string) string {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	if ValidConcentration(cleaned) {
		return cleaned
	}
	return DefaultConcentration
}

// ValidIntensity reports whether the value names a known projection label.
func ValidIntensity(value string) bool {
	switch value {
	case IntensityTrail, IntensityRoom, IntensitySkin, IntensitySubtle:
		return true
	}
	return false
}

// NormalizeIntensity lowercases and trims the value, falling back to the
// default label if it is not recognized.
func NormalizeIntensity(value string) string {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	if ValidIntensity(cleaned) {
		return cleaned
	}
	return DefaultIntensity
}

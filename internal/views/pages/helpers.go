package pages

import (
	"fmt"
	"strconv"
	"strings"

	"aromaforge/internal/catalog"
)

// FormatBand renders a percentage band for display.
func FormatBand(band catalog.PercentRange) string {
	return band.String()
}

// FormatGrams renders a weight to milligram precision without trailing zeros.
func FormatGrams(grams float64) string {
	s := strconv.FormatFloat(grams, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s + " g"
}

// FormatDays renders a steeping window.
func FormatDays(minDays, maxDays int) string {
	if minDays == maxDays {
		return fmt.Sprintf("%d days", minDays)
	}
	return fmt.Sprintf("%d–%d days", minDays, maxDays)
}

// DisplayFamily title-cases a family name for headings.
func DisplayFamily(family string) string {
	family = strings.TrimSpace(family)
	if family == "" {
		return ""
	}
	return strings.ToUpper(family[:1]) + family[1:]
}

// ParseUint converts a form value into an id, returning zero on garbage.
func ParseUint(value string) uint {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return uint(parsed)
}

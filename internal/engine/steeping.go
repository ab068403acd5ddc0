package engine

import (
	"strings"

	"aromaforge/internal/catalog"
)

// Maturation categories, fastest first.
const (
	CategoryFastStable   = "fast-stable"
	CategoryMediumSettle = "medium-settle"
	CategorySlowEvolving = "slow-evolving"
)

// slowSubstances are materials that keep rearranging themselves for weeks
// after compounding. Matched as case-insensitive substrings of the name.
var slowSubstances = []string{
	"oud",
	"labdanum",
	"patchouli",
	"myrrh",
	"benzoin",
	"styrax",
	"amber",
	"oakmoss",
}

// estimateSteeping classifies the picked materials into a rest-period
// category. This is a heuristic classification, not a measurement: resinous
// names, high persistence, and costly naturals all push toward a longer
// maceration window, and the strongest concentration stretches everything
// by half again.
func estimateSteeping(picked []catalog.Ingredient, concentration string) Steeping {
	score := 0.0
	for _, ing := range picked {
		name := strings.ToLower(ing.Name)
		for _, slow := range slowSubstances {
			if strings.Contains(name, slow) {
				score += 3
				break
			}
		}
		if ing.Persistence >= 8 {
			score++
		}
		if ing.Cost >= 4 {
			score++
		}
	}
	if concentration == ConcentrationExtrait {
		score *= 1.5
	}

	switch {
	case score < 6:
		return Steeping{
			Category: CategoryFastStable,
			MinDays:  1,
			MaxDays:  3,
			Label:    "Quick settle",
			Notes:    "Light volatile materials knit together fast; evaluate after a short rest.",
		}
	case score < 14:
		return Steeping{
			Category: CategoryMediumSettle,
			MinDays:  7,
			MaxDays:  14,
			Label:    "Standard maceration",
			Notes:    "Give the heart a week or two in a cool dark place before judging the blend.",
		}
	default:
		return Steeping{
			Category: CategorySlowEvolving,
			MinDays:  14,
			MaxDays:  42,
			Label:    "Long maceration",
			Notes:    "Resinous materials keep rearranging for weeks; resist judging the drydown early.",
		}
	}
}

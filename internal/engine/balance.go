package engine

import (
	"fmt"
	"sort"

	"aromaforge/internal/catalog"
)

// balance runs the four rebalancing passes over an assembled formula. The
// passes rewrite bands in place, never remove or reorder picks, and must run
// in this order: dominance rebalance, hard cap, count correction, duplicate
// dampening. Each is a no-op on a formula with nothing to correct.
func (e *Engine) balance(formula Formula, hero string) []string {
	var notes []string
	e.rebalanceDominance(formula, hero)
	e.applyHardCap(formula, hero)
	notes = append(notes, e.correctByCount(formula, hero)...)
	notes = append(notes, e.dampenDuplicates(formula, hero)...)
	return notes
}

// bodyPick is a heart or base entry paired with its catalog record.
type bodyPick struct {
	pick *Pick
	ing  catalog.Ingredient
}

// bodyPicks collects every heart and base entry in deterministic order,
// resolving each back to its catalog record for the original scalars.
func (e *Engine) bodyPicks(formula Formula) []bodyPick {
	var out []bodyPick
	formula.Walk(func(_ string, layer catalog.Layer, pick *Pick) {
		if layer == catalog.LayerTop {
			return
		}
		ing, ok := e.library.Find(pick.Name)
		if !ok {
			return
		}
		out = append(out, bodyPick{pick: pick, ing: ing})
	})
	return out
}

// rebalanceDominance lets at most one loud material carry full weight: when
// more than one heart/base entry has catalog dominance of 7 or higher, every
// such entry except the hero is cut to 40% of its band.
func (e *Engine) rebalanceDominance(formula Formula, hero string) {
	var loud []bodyPick
	for _, bp := range e.bodyPicks(formula) {
		if bp.ing.Dominance >= 7 {
			loud = append(loud, bp)
		}
	}
	if len(loud) <= 1 {
		return
	}
	for _, bp := range loud {
		if bp.pick.Name == hero {
			continue
		}
		scaleBand(bp.pick, 0.4)
	}
}

// applyHardCap clamps every non-hero heart/base band whose upper bound
// exceeds 6.5%. The cap applies unconditionally, whatever the earlier pass
// did.
func (e *Engine) applyHardCap(formula Formula, hero string) {
	for _, bp := range e.bodyPicks(formula) {
		if bp.pick.Name == hero {
			continue
		}
		if bp.pick.Percent.High > 6.5 {
			if bp.pick.Percent.Low > 3.5 {
				bp.pick.Percent.Low = 3.5
			}
			bp.pick.Percent.High = 6.5
			bp.pick.Midpoint = bp.pick.Percent.Midpoint()
		}
	}
}

// correctByCount keeps the body of the blend from stacking heavyweights:
// when more than two heart/base entries still exceed a 5% upper bound, the
// weakest-persistence non-hero entries are reduced to 70% of their band, one
// at a time, until at most two remain.
func (e *Engine) correctByCount(formula Formula, hero string) []string {
	heavy := func(bp bodyPick) bool { return bp.pick.Percent.High > 5 }

	var over []bodyPick
	for _, bp := range e.bodyPicks(formula) {
		if heavy(bp) {
			over = append(over, bp)
		}
	}
	if len(over) <= 2 {
		return nil
	}

	sort.SliceStable(over, func(i, j int) bool {
		if over[i].pick.Name == hero {
			return true
		}
		if over[j].pick.Name == hero {
			return false
		}
		if over[i].ing.Persistence != over[j].ing.Persistence {
			return over[i].ing.Persistence < over[j].ing.Persistence
		}
		return over[i].pick.Name < over[j].pick.Name
	})

	count := len(over)
	var notes []string
	for _, bp := range over {
		if count <= 2 {
			break
		}
		if bp.pick.Name == hero {
			continue
		}
		scaleBand(bp.pick, 0.7)
		notes = append(notes, fmt.Sprintf("Reduced %s to %s to keep the drydown balanced.", bp.pick.Name, bp.pick.Percent))
		if !heavy(bp) {
			count--
		}
	}
	return notes
}

// dampenDuplicates flags materials that fill the same functional slot. When
// two or more members of a group land in the formula, the second-listed
// present member loses 40% of its heart/base weight; the first-listed member
// is treated as the group's primary and keeps its band.
func (e *Engine) dampenDuplicates(formula Formula, hero string) []string {
	names := make(map[string]bool)
	formula.Walk(func(_ string, _ catalog.Layer, pick *Pick) {
		names[pick.Name] = true
	})

	groups := make([]string, 0, len(e.groups))
	for group := range e.groups {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	var notes []string
	for _, group := range groups {
		var present []string
		for _, member := range e.groups[group] {
			if names[member] {
				present = append(present, member)
			}
		}
		if len(present) < 2 {
			continue
		}

		second := present[1]
		notes = append(notes, fmt.Sprintf("%s and %s overlap as %s materials; %s was dialled back.",
			present[0], second, group, second))
		for _, bp := range e.bodyPicks(formula) {
			if bp.pick.Name == second {
				scaleBand(bp.pick, 0.6)
			}
		}
	}
	return notes
}

// scaleBand rewrites the band and moves the working midpoint with it, so
// downstream consumers weighing from the midpoint match the printed band.
func scaleBand(pick *Pick, factor float64) {
	pick.Percent.Low = round1(pick.Percent.Low * factor)
	pick.Percent.High = round1(pick.Percent.High * factor)
	pick.Midpoint = pick.Percent.Midpoint()
}

package engine

import (
	"fmt"
	"math"
	"sort"

	"aromaforge/internal/catalog"
)

// composer holds the working state of a single generation. It is built fresh
// per request and discarded afterwards, so nothing here is shared.
type composer struct {
	engine     *Engine
	req        Request
	ctx        contextProfile
	rng        *Stream
	formula    Formula
	picked     []catalog.Ingredient
	used       map[string]bool
	hero       *catalog.Ingredient
	heroLayer  catalog.Layer
	heroFamily string
	requested  []string
	warnings   []string
	notes      []string
	offset     int
}

func newComposer(e *Engine, req Request) *composer {
	c := &composer{
		engine:  e,
		req:     req,
		ctx:     resolveContext(req.Concentration, req.Occasion, req.Intensity),
		rng:     NewStream(req.Identifier),
		formula: Formula{},
		used:    make(map[string]bool),
	}
	for _, family := range []string{req.Dominant, req.Secondary, req.Accent} {
		key := normalizeFamily(family)
		if key == "" {
			continue
		}
		c.requested = append(c.requested, key)
		if _, ok := c.formula[key]; !ok {
			c.formula[key] = &LayerSet{}
		}
	}
	if c.ctx.note != "" {
		c.notes = append(c.notes, c.ctx.note)
	}
	return c
}

func (c *composer) layerSet(family string) *LayerSet {
	set, ok := c.formula[family]
	if !ok {
		set = &LayerSet{}
		c.formula[family] = set
	}
	return set
}

func (c *composer) total() int {
	return c.formula.Count()
}

// candidate is a scored pool entry together with its provenance.
type candidate struct {
	ing    catalog.Ingredient
	family string
	layer  catalog.Layer
	score  float64
}

// gather filters one family/layer bucket down to unused materials matching
// any of the given roles.
func (c *composer) gather(family string, layer catalog.Layer, roles ...catalog.Role) []candidate {
	var out []candidate
	for _, ing := range c.engine.library.Pool(family, layer) {
		if c.used[ing.Name] {
			continue
		}
		if c.hero != nil && ing.Name == c.hero.Name {
			continue
		}
		if !roleMatches(ing.Role, roles) {
			continue
		}
		out = append(out, candidate{ing: ing, family: family, layer: layer})
	}
	return out
}

func roleMatches(role catalog.Role, roles []catalog.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}

// rank scores the candidates and orders them best first. Each candidate draws
// its jitter at a distinct stream offset so the ordering is reproducible.
func (c *composer) rank(cands []candidate) []candidate {
	for i := range cands {
		cands[i].score = c.score(cands[i].ing, c.offset+i)
	}
	c.offset += len(cands)
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].ing.Name < cands[j].ing.Name
	})
	return cands
}

// score rewards affinity with the requested families, adds seeded jitter,
// and penalizes a second loud material competing with the hero.
func (c *composer) score(ing catalog.Ingredient, offset int) float64 {
	s := 0.0
	for _, family := range c.requested {
		for _, affinity := range ing.BlendsWith {
			if normalizeFamily(affinity) == family {
				s += 2
				break
			}
		}
	}
	s += c.rng.Next(offset) * 3
	if c.hero != nil && ing.Dominance >= 7 && c.hero.Dominance >= 7 {
		s -= 4
	}
	return s
}

// selectHero picks the material that carries the dominant family. The pool is
// the family's heart and base heroes; when no explicit hero exists, any
// heart or base material may be promoted, strongest persistence first. The
// final choice is uniform among the top three candidates.
func (c *composer) selectHero() {
	family := normalizeFamily(c.req.Dominant)
	if !c.engine.library.Has(family) {
		return
	}

	pool := c.heroPool(family, catalog.RoleHero)
	if len(pool) == 0 {
		pool = c.heroPool(family)
	}
	if len(pool) == 0 {
		return
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].ing.Persistence != pool[j].ing.Persistence {
			return pool[i].ing.Persistence > pool[j].ing.Persistence
		}
		return pool[i].ing.Name < pool[j].ing.Name
	})

	n := len(pool)
	if n > 3 {
		n = 3
	}
	idx := int(c.rng.Next(0) * float64(n))
	if idx >= n {
		idx = n - 1
	}

	chosen := pool[idx]
	c.hero = &chosen.ing
	c.heroLayer = chosen.layer
	c.heroFamily = family
}

func (c *composer) heroPool(family string, roles ...catalog.Role) []candidate {
	pool := c.gather(family, catalog.LayerHeart, roles...)
	return append(pool, c.gather(family, catalog.LayerBase, roles...)...)
}

// fillDominant builds the dominant family: a 1–2 material opening, then the
// hero and its supporting backbones in the heart and base.
func (c *composer) fillDominant() {
	family := normalizeFamily(c.req.Dominant)
	if !c.engine.library.Has(family) {
		return
	}

	opening := c.rank(c.gather(family, catalog.LayerTop, catalog.RoleLift, catalog.RoleCharacter))
	if len(opening) > 0 {
		first := opening[0]
		c.place(first.family, first.layer, first.ing, 1.0)
		if first.ing.Persistence < 5 {
			if booster := pickBooster(opening[1:]); booster != nil {
				c.place(family, catalog.LayerTop, *booster, 0.6)
				c.notes = append(c.notes, fmt.Sprintf("Added %s so the opening survives into the heart.", booster.Name))
			}
		}
	}

	for _, layer := range []catalog.Layer{catalog.LayerHeart, catalog.LayerBase} {
		heroHere := c.hero != nil && c.heroLayer == layer
		if heroHere {
			c.place(family, layer, *c.hero, c.ctx.heroScale)
		}

		count, scale := 2, 1.0
		if heroHere {
			// The hero already anchors this layer; halve the support.
			count, scale = 1, 0.7
		}
		backbones := c.rank(c.gather(family, layer, catalog.RoleBackbone))
		for i := 0; i < count && i < len(backbones); i++ {
			c.place(family, layer, backbones[i].ing, scale)
		}
	}
}

// pickBooster returns the most persistent remaining opener that can outlast
// a fleeting first choice, or nil when none qualifies.
func pickBooster(rest []candidate) *catalog.Ingredient {
	var best *catalog.Ingredient
	for i := range rest {
		if rest[i].ing.Persistence < 5 {
			continue
		}
		if best == nil || rest[i].ing.Persistence > best.Persistence {
			best = &rest[i].ing
		}
	}
	return best
}

// fillSecondary adds exactly one lift, one heart backbone, and one base
// backbone, each scaled down so the family supports rather than competes.
func (c *composer) fillSecondary() {
	family := normalizeFamily(c.req.Secondary)
	if !c.engine.library.Has(family) {
		return
	}

	slots := []struct {
		layer catalog.Layer
		role  catalog.Role
		scale float64
	}{
		{catalog.LayerTop, catalog.RoleLift, 0.8},
		{catalog.LayerHeart, catalog.RoleBackbone, 0.7},
		{catalog.LayerBase, catalog.RoleBackbone, 0.6},
	}
	for _, slot := range slots {
		ranked := c.rank(c.gather(family, slot.layer, slot.role))
		if len(ranked) > 0 {
			c.place(family, slot.layer, ranked[0].ing, slot.scale)
		}
	}
}

// fillAccent places a single half-weight character material into whichever
// layer it naturally belongs to. The accent is a garnish, not a layer.
func (c *composer) fillAccent() {
	family := normalizeFamily(c.req.Accent)
	if !c.engine.library.Has(family) {
		return
	}

	pool := c.gather(family, catalog.LayerHeart, catalog.RoleCharacter)
	pool = append(pool, c.gather(family, catalog.LayerBase, catalog.RoleCharacter)...)
	ranked := c.rank(pool)
	if len(ranked) > 0 {
		c.place(ranked[0].family, ranked[0].layer, ranked[0].ing, 0.5)
	}
}

// enforceFloor tops up heavy dominant families to at least nine materials
// using unused character picks from the secondary and accent families.
func (c *composer) enforceFloor() {
	if !catalog.HeavyFamily(c.req.Dominant) {
		return
	}

	for c.total() < 9 {
		var pool []candidate
		for _, family := range []string{normalizeFamily(c.req.Secondary), normalizeFamily(c.req.Accent)} {
			if !c.engine.library.Has(family) {
				continue
			}
			for _, layer := range catalog.Layers() {
				pool = append(pool, c.gather(family, layer, catalog.RoleCharacter)...)
			}
		}
		ranked := c.rank(pool)
		if len(ranked) == 0 {
			return
		}
		best := ranked[0]
		c.place(best.family, best.layer, best.ing, 0.4)
	}
}

// injectStructure is the safety net for dense families that still came out
// thin: when a heavy dominant blend holds under seven materials and is not
// already a quick settler, up to two backbone diffusers are added to its
// base layer.
func (c *composer) injectStructure() {
	family := normalizeFamily(c.req.Dominant)
	if !catalog.HeavyFamily(family) {
		return
	}
	if c.total() >= 7 {
		return
	}
	provisional := estimateSteeping(c.picked, c.ctx.concentration)
	if provisional.Category == CategoryFastStable {
		return
	}

	injected := 0
	for _, name := range catalog.DiffuserPool() {
		if injected == 2 {
			break
		}
		if c.used[name] {
			continue
		}
		ing, ok := c.engine.library.Find(name)
		if !ok {
			continue
		}
		c.place(family, catalog.LayerBase, ing, 0.4)
		c.notes = append(c.notes, fmt.Sprintf("Added %s to give a sparse drydown room to breathe.", name))
		injected++
	}
}

// place converts the material's published midpoint through the scale factor
// into a working band and records the pick. Advisory ceilings raise a
// warning here but never clamp the band; only the balancing passes rewrite
// percentages.
func (c *composer) place(family string, layer catalog.Layer, ing catalog.Ingredient, scale float64) {
	mid := ing.Percent.Midpoint() * scale
	band := makeRange(mid)

	if ing.RegulatoryLimit > 0 && mid > ing.RegulatoryLimit {
		c.warnings = append(c.warnings, fmt.Sprintf(
			"%s lands at %.1f%%, above its advisory ceiling of %.1f%%; review before compounding.",
			ing.Name, mid, ing.RegulatoryLimit))
	}

	picks := c.layerSet(family).Layer(layer)
	*picks = append(*picks, Pick{
		Name:     ing.Name,
		Percent:  band,
		Supplier: ing.Supplier,
		Midpoint: band.Midpoint(),
	})
	c.picked = append(c.picked, ing)
	c.used[ing.Name] = true
}

// makeRange derives a ±30% band around the scaled midpoint, floored at 0.1
// and rounded to one decimal.
func makeRange(mid float64) catalog.PercentRange {
	low := round1(mid * 0.7)
	high := round1(mid * 1.3)
	if low < 0.1 {
		low = 0.1
	}
	if high < low {
		high = low
	}
	return catalog.PercentRange{Low: low, High: high}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

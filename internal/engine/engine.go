// Package engine generates perfume formulas from three aromatic families and
// a handful of contextual parameters. Generation is a pure computation over
// the material catalog: no I/O, no clock, no shared state, and the same
// request always yields byte-identical output.
package engine

import (
	"sort"
	"strings"

	"aromaforge/internal/catalog"
)

// Request carries the inputs for one generation. Dominant, Secondary and
// Accent name catalog families; unknown names degrade to empty sub-formulas.
// Identifier seeds the deterministic stream and may be any non-empty string.
type Request struct {
	Dominant      string
	Secondary     string
	Accent        string
	Identifier    string
	Concentration string
	Occasion      string
	Intensity     string
}

// Pick is one material placed into the generated formula. Percent is the
// working band; Midpoint is the band's centre, and the balancing passes keep
// it in step when they rewrite the band.
type Pick struct {
	Name     string
	Percent  catalog.PercentRange
	Supplier string
	Midpoint float64
}

// LayerSet groups a family's picks by pyramid layer.
type LayerSet struct {
	Top   []Pick
	Heart []Pick
	Base  []Pick
}

// Layer returns the addressed slice so balancing passes can rewrite bands in
// place.
func (ls *LayerSet) Layer(layer catalog.Layer) *[]Pick {
	switch layer {
	case catalog.LayerTop:
		return &ls.Top
	case catalog.LayerHeart:
		return &ls.Heart
	default:
		return &ls.Base
	}
}

// Count returns the number of picks across all three layers.
func (ls *LayerSet) Count() int {
	return len(ls.Top) + len(ls.Heart) + len(ls.Base)
}

// Formula maps family name to its layered picks. A family key exists only if
// it was requested or received an overflow or structural material.
type Formula map[string]*LayerSet

// Walk visits every pick in deterministic order: families sorted by name,
// layers in pyramid order.
func (f Formula) Walk(fn func(family string, layer catalog.Layer, pick *Pick)) {
	families := make([]string, 0, len(f))
	for family := range f {
		families = append(families, family)
	}
	sort.Strings(families)
	for _, family := range families {
		set := f[family]
		for _, layer := range catalog.Layers() {
			picks := set.Layer(layer)
			for i := range *picks {
				fn(family, layer, &(*picks)[i])
			}
		}
	}
}

// Names returns every picked material name in Walk order.
func (f Formula) Names() []string {
	var names []string
	f.Walk(func(_ string, _ catalog.Layer, pick *Pick) {
		names = append(names, pick.Name)
	})
	return names
}

// Count returns the total number of picks in the formula.
func (f Formula) Count() int {
	total := 0
	for _, set := range f {
		total += set.Count()
	}
	return total
}

// Steeping classifies how long a finished blend should rest before judging.
type Steeping struct {
	Category string
	MinDays  int
	MaxDays  int
	Label    string
	Notes    string
}

// Result is the complete outcome of one generation. All diagnostic metadata
// travels with the result; there is no shared slot to race on.
type Result struct {
	Formula         Formula
	Hero            *Pick
	HeroFamily      string
	IngredientCount int
	Steeping        Steeping
	Warnings        []string
	Notes           []string
	Concentration   string
}

// Engine generates formulas against a fixed material library.
type Engine struct {
	library *catalog.Library
	groups  map[string][]string
}

// New builds an engine over the given library. Passing nil selects the
// built-in catalog.
func New(library *catalog.Library) *Engine {
	if library == nil {
		library = catalog.Builtin()
	}
	return &Engine{
		library: library,
		groups:  catalog.DuplicateGroups(),
	}
}

// Library exposes the catalog the engine composes from.
func (e *Engine) Library() *catalog.Library {
	return e.library
}

// Generate runs the full pipeline: hero selection, per-family layer fill,
// ingredient-floor top-up, structural injection, balancing passes, and the
// maturation estimate. It never fails on valid-shaped input.
func (e *Engine) Generate(req Request) Result {
	c := newComposer(e, req)

	c.selectHero()
	c.fillDominant()
	c.fillSecondary()
	c.fillAccent()
	c.enforceFloor()
	c.injectStructure()

	heroName := ""
	if c.hero != nil {
		heroName = c.hero.Name
	}
	balanceNotes := e.balance(c.formula, heroName)
	c.notes = append(c.notes, balanceNotes...)

	steeping := estimateSteeping(c.picked, c.ctx.concentration)

	var heroPick *Pick
	if heroName != "" {
		c.formula.Walk(func(_ string, _ catalog.Layer, pick *Pick) {
			if pick.Name == heroName {
				cp := *pick
				heroPick = &cp
			}
		})
	}

	return Result{
		Formula:         c.formula,
		Hero:            heroPick,
		HeroFamily:      c.heroFamily,
		IngredientCount: len(c.picked),
		Steeping:        steeping,
		Warnings:        c.warnings,
		Notes:           c.notes,
		Concentration:   c.ctx.concentration,
	}
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

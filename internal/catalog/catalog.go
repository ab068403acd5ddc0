// Package catalog holds the static perfumery material library the composer
// draws from. The library is read-only at runtime: callers receive copies of
// ingredient records and never mutate the catalog itself.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Role describes the single structural purpose a material plays in a blend.
type Role string

const (
	RoleHero      Role = "hero"
	RoleBackbone  Role = "backbone"
	RoleCharacter Role = "character"
	RoleLift      Role = "lift"
)

// ValidRole reports whether the value names one of the known material roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleHero, RoleBackbone, RoleCharacter, RoleLift:
		return true
	}
	return false
}

// Layer is the temporal phase of the fragrance a material contributes to.
type Layer string

const (
	LayerTop   Layer = "top"
	LayerHeart Layer = "heart"
	LayerBase  Layer = "base"
)

// Layers returns the evaporation phases in pyramid order.
func Layers() []Layer {
	return []Layer{LayerTop, LayerHeart, LayerBase}
}

// ValidLayer reports whether the value names a known pyramid layer.
func ValidLayer(l Layer) bool {
	switch l {
	case LayerTop, LayerHeart, LayerBase:
		return true
	}
	return false
}

// PercentRange is a low–high band expressed as percent of total fragrance oil.
// Bands stay numeric internally and only render to text at display boundaries.
type PercentRange struct {
	Low  float64
	High float64
}

// Midpoint returns the centre of the band, the value scaling works from.
func (p PercentRange) Midpoint() float64 {
	return (p.Low + p.High) / 2
}

// Scale returns a copy of the band multiplied by the given factor.
func (p PercentRange) Scale(factor float64) PercentRange {
	return PercentRange{Low: p.Low * factor, High: p.High * factor}
}

// String renders the band the way it appears on printed formulas.
func (p PercentRange) String() string {
	return fmt.Sprintf("%.1f–%.1f%%", p.Low, p.High)
}

// Ingredient is one material record in the library. Records are immutable;
// the composer copies values into its own output and never writes back.
type Ingredient struct {
	Name            string
	Percent         PercentRange
	Supplier        string
	RegulatoryLimit float64 // advisory ceiling, 0 means unrestricted
	Strength        int
	Cost            int
	Persistence     int // 1–10
	Dominance       int // 1–10
	BlendsWith      []string
	Role            Role
}

// Library partitions the material records by family and pyramid layer.
type Library struct {
	families map[string]map[Layer][]Ingredient
}

// NewLibrary wraps the provided family data. Callers should run Validate
// before handing the library to the composer.
func NewLibrary(families map[string]map[Layer][]Ingredient) *Library {
	return &Library{families: families}
}

// Has reports whether the family exists in the library.
func (l *Library) Has(family string) bool {
	_, ok := l.families[normalizeFamily(family)]
	return ok
}

// Families returns the known family names in sorted order.
func (l *Library) Families() []string {
	names := make([]string, 0, len(l.families))
	for name := range l.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pool returns a copy of a single family/layer bucket. Unknown families or
// layers yield an empty slice rather than an error.
func (l *Library) Pool(family string, layer Layer) []Ingredient {
	bucket := l.families[normalizeFamily(family)][layer]
	out := make([]Ingredient, len(bucket))
	copy(out, bucket)
	return out
}

// HeartAndBase returns the combined heart and base pools of a family, with
// the heart entries first.
func (l *Library) HeartAndBase(family string) []Ingredient {
	pool := l.Pool(family, LayerHeart)
	return append(pool, l.Pool(family, LayerBase)...)
}

// Find locates a material anywhere in the library by display name.
func (l *Library) Find(name string) (Ingredient, bool) {
	for _, layers := range l.families {
		for _, bucket := range layers {
			for _, ing := range bucket {
				if ing.Name == name {
					return ing, true
				}
			}
		}
	}
	return Ingredient{}, false
}

// HomeLayer reports which layer of which family a material lives in.
func (l *Library) HomeLayer(name string) (family string, layer Layer, ok bool) {
	for fam, layers := range l.families {
		for lay, bucket := range layers {
			for _, ing := range bucket {
				if ing.Name == name {
					return fam, lay, true
				}
			}
		}
	}
	return "", "", false
}

// Validate confirms the structural invariants of the library: roles and
// layers are known, blend affinities reference real families, percent bands
// are sane, and names are unique within their family/layer bucket.
func (l *Library) Validate() error {
	for family, layers := range l.families {
		if strings.TrimSpace(family) == "" {
			return fmt.Errorf("catalog: family with empty name")
		}
		for layer, bucket := range layers {
			if !ValidLayer(layer) {
				return fmt.Errorf("catalog: family %q uses unknown layer %q", family, layer)
			}
			seen := make(map[string]struct{}, len(bucket))
			for _, ing := range bucket {
				name := strings.TrimSpace(ing.Name)
				if name == "" {
					return fmt.Errorf("catalog: unnamed material in %s/%s", family, layer)
				}
				if _, dup := seen[name]; dup {
					return fmt.Errorf("catalog: duplicate material %q in %s/%s", name, family, layer)
				}
				seen[name] = struct{}{}
				if !ValidRole(ing.Role) {
					return fmt.Errorf("catalog: material %q has unknown role %q", name, ing.Role)
				}
				if ing.Percent.Low <= 0 || ing.Percent.High < ing.Percent.Low {
					return fmt.Errorf("catalog: material %q has invalid percent band %.2f–%.2f", name, ing.Percent.Low, ing.Percent.High)
				}
				if ing.Persistence < 1 || ing.Persistence > 10 {
					return fmt.Errorf("catalog: material %q persistence %d out of range", name, ing.Persistence)
				}
				if ing.Dominance < 1 || ing.Dominance > 10 {
					return fmt.Errorf("catalog: material %q dominance %d out of range", name, ing.Dominance)
				}
				for _, affinity := range ing.BlendsWith {
					if _, ok := l.families[normalizeFamily(affinity)]; !ok {
						return fmt.Errorf("catalog: material %q blends with unknown family %q", name, affinity)
					}
				}
			}
		}
	}
	return nil
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

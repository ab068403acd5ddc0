package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is a YAML-described set of materials merged over the built-in
// library at startup. Ateliers use overlays to trial materials from supplier
// datasheets without recompiling.
type Overlay struct {
	Families map[string]map[string][]OverlayMaterial `yaml:"families"`
}

// OverlayMaterial mirrors Ingredient in a flat YAML-friendly shape.
type OverlayMaterial struct {
	Name            string   `yaml:"name"`
	Low             float64  `yaml:"low"`
	High            float64  `yaml:"high"`
	Supplier        string   `yaml:"supplier,omitempty"`
	RegulatoryLimit float64  `yaml:"regulatory_limit,omitempty"`
	Strength        int      `yaml:"strength"`
	Cost            int      `yaml:"cost"`
	Persistence     int      `yaml:"persistence"`
	Dominance       int      `yaml:"dominance"`
	BlendsWith      []string `yaml:"blends_with,omitempty"`
	Role            string   `yaml:"role"`
}

// ParseOverlay decodes an overlay document from YAML bytes.
func ParseOverlay(data []byte) (*Overlay, error) {
	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("catalog: decode overlay: %w", err)
	}
	return &overlay, nil
}

// LoadOverlayFile reads and decodes an overlay document from disk.
func LoadOverlayFile(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read overlay: %w", err)
	}
	return ParseOverlay(data)
}

// Encode renders the overlay back to YAML.
func (o *Overlay) Encode() ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("catalog: encode overlay: %w", err)
	}
	return data, nil
}

// Merge returns a new library containing the receiver's materials plus the
// overlay's, validated as a whole. Overlay materials replace built-in
// materials that share the same family, layer, and name.
func (l *Library) Merge(overlay *Overlay) (*Library, error) {
	merged := make(map[string]map[Layer][]Ingredient, len(l.families))
	for family, layers := range l.families {
		merged[family] = make(map[Layer][]Ingredient, len(layers))
		for layer, bucket := range layers {
			cp := make([]Ingredient, len(bucket))
			copy(cp, bucket)
			merged[family][layer] = cp
		}
	}

	if overlay != nil {
		for family, layers := range overlay.Families {
			key := normalizeFamily(family)
			if merged[key] == nil {
				merged[key] = make(map[Layer][]Ingredient, len(layers))
			}
			for layerName, materials := range layers {
				layer := Layer(layerName)
				for _, material := range materials {
					ing := Ingredient{
						Name:            material.Name,
						Percent:         PercentRange{Low: material.Low, High: material.High},
						Supplier:        material.Supplier,
						RegulatoryLimit: material.RegulatoryLimit,
						Strength:        material.Strength,
						Cost:            material.Cost,
						Persistence:     material.Persistence,
						Dominance:       material.Dominance,
						BlendsWith:      material.BlendsWith,
						Role:            Role(material.Role),
					}
					merged[key][layer] = replaceOrAppend(merged[key][layer], ing)
				}
			}
		}
	}

	result := NewLibrary(merged)
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func replaceOrAppend(bucket []Ingredient, ing Ingredient) []Ingredient {
	for i := range bucket {
		if bucket[i].Name == ing.Name {
			bucket[i] = ing
			return bucket
		}
	}
	return append(bucket, ing)
}

package engine

import "strings"

// Concentration tiers, strongest first. Unrecognized values fall back to
// ConcentrationEauDeParfum.
const (
	ConcentrationExtrait       = "extrait"
	ConcentrationEauDeParfum   = "eau de parfum"
	ConcentrationEauDeToilette = "eau de toilette"
	ConcentrationEauFraiche    = "eau fraiche"
)

// Intensity labels describing how far the finished blend should project.
const (
	IntensityTrail  = "leave a trail"
	IntensityRoom   = "room presence"
	IntensitySkin   = "skin scent"
	IntensitySubtle = "subtle aura"
)

type contextProfile struct {
	concentration string
	intensity     string
	occasion      string
	heroScale     float64
	note          string
}

var concentrationScales = map[string]float64{
	ConcentrationExtrait:       1.25,
	ConcentrationEauDeParfum:   1.0,
	ConcentrationEauDeToilette: 0.85,
	ConcentrationEauFraiche:    0.7,
}

var intensityScales = map[string]float64{
	IntensityTrail:  1.15,
	IntensityRoom:   1.0,
	IntensitySkin:   0.9,
	IntensitySubtle: 0.8,
}

var occasionNotes = map[string]string{
	"evening":          "Composed for evening wear; the base carries most of the weight.",
	"office":           "Kept office-safe; projection trimmed across the heart.",
	"summer daytime":   "Tuned for warm weather; the opening does the talking.",
	"special occasion": "Dressed up for occasions; richer heart materials favoured.",
}

// resolveContext canonicalizes the optional request parameters. Anything it
// does not recognize silently falls back to the default for that dimension.
func resolveContext(concentration, occasion, intensity string) contextProfile {
	profile := contextProfile{
		concentration: CanonicalConcentration(concentration),
		intensity:     canonicalIntensity(intensity),
	}
	profile.heroScale = concentrationScales[profile.concentration] * intensityScales[profile.intensity]

	key := strings.ToLower(strings.TrimSpace(occasion))
	if note, ok := occasionNotes[key]; ok {
		profile.occasion = key
		profile.note = note
	}
	return profile
}

// CanonicalConcentration maps free-form input to a known tier, defaulting to
// eau de parfum.
func CanonicalConcentration(value string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	if _, ok := concentrationScales[key]; ok {
		return key
	}
	return ConcentrationEauDeParfum
}

func canonicalIntensity(value string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	if _, ok := intensityScales[key]; ok {
		return key
	}
	return IntensityRoom
}

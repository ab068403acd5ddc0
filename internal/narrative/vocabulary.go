package narrative

// familyVoice is the static vocabulary a scent card draws from. Entries are
// display copy only; nothing here feeds back into formula generation.
type familyVoice struct {
	Adjectives []string
	Imagery    []string
}

var voices = map[string]familyVoice{
	"oriental": {
		Adjectives: []string{"opulent", "resinous", "sun-warmed"},
		Imagery:    []string{"a spice market at dusk", "warm skin under silk"},
	},
	"woody": {
		Adjectives: []string{"grounded", "dry", "architectural"},
		Imagery:    []string{"a cedar chest opened after years", "rain on a forest floor"},
	},
	"spicy": {
		Adjectives: []string{"crackling", "vivid", "peppered"},
		Imagery:    []string{"crushed peppercorns on marble", "mulled wine in winter"},
	},
	"gourmand": {
		Adjectives: []string{"indulgent", "velvety", "toasted"},
		Imagery:    []string{"a patisserie window at dawn", "caramel left to darken"},
	},
	"fresh": {
		Adjectives: []string{"crisp", "breezy", "laundered"},
		Imagery:    []string{"linen drying in a sea wind", "cut herbs on a cool morning"},
	},
	"citrus": {
		Adjectives: []string{"sparkling", "zesty", "sunlit"},
		Imagery:    []string{"a grove of bergamot at noon", "peel twisted over ice"},
	},
	"aquatic": {
		Adjectives: []string{"saline", "weightless", "transparent"},
		Imagery:    []string{"morning fog over open water", "smooth stones below the tide line"},
	},
	"floral": {
		Adjectives: []string{"luminous", "petalled", "tender"},
		Imagery:    []string{"a walled garden after rain", "jasmine climbing a summer wall"},
	},
	"musk": {
		Adjectives: []string{"soft", "enveloping", "second-skin"},
		Imagery:    []string{"cashmere warmed by the body"},
	},
	"smoky": {
		Adjectives: []string{"charred", "brooding", "ember-lit"},
		Imagery:    []string{"a dying campfire at first light"},
	},
	"leather": {
		Adjectives: []string{"burnished", "animalic", "worn-in"},
		Imagery:    []string{"an old saddle room"},
	},
	"incense": {
		Adjectives: []string{"sacred", "drifting", "mineral"},
		Imagery:    []string{"smoke curling through a stone nave"},
	},
	"green": {
		Adjectives: []string{"sappy", "bitter-fresh", "verdant"},
		Imagery:    []string{"snapped stems and crushed leaves"},
	},
}

var fallbackVoice = familyVoice{
	Adjectives: []string{"quiet", "understated"},
	Imagery:    []string{"a room you keep returning to"},
}

func voiceFor(family string) familyVoice {
	if voice, ok := voices[family]; ok {
		return voice
	}
	return fallbackVoice
}

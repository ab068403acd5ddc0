// Package narrative turns a generated formula into customer-facing scent
// card copy. It consumes the composer's output and a static vocabulary
// table; it never influences generation.
package narrative

import (
	"fmt"
	"strings"

	"aromaforge/internal/catalog"
	"aromaforge/internal/engine"
)

// PyramidLine lists the material names contributing to one layer.
type PyramidLine struct {
	Layer catalog.Layer
	Names []string
}

// Card is the rendered narrative for one generated blend. Building a card is
// deterministic for a given result.
type Card struct {
	Title          string
	Tagline        string
	Accords        []string
	Pyramid        []PyramidLine
	Paragraphs     []string
	SteepingAdvice string
	Notes          []string
}

// Compose builds a scent card from the generation result and the request
// that produced it.
func Compose(result engine.Result, req engine.Request) Card {
	dominant := strings.ToLower(strings.TrimSpace(req.Dominant))
	secondary := strings.ToLower(strings.TrimSpace(req.Secondary))
	accent := strings.ToLower(strings.TrimSpace(req.Accent))

	card := Card{
		Title:   title(dominant, req.Identifier),
		Accords: accords(dominant, secondary, accent),
		Pyramid: pyramid(result.Formula),
		Notes:   append([]string(nil), result.Notes...),
	}

	dominantVoice := voiceFor(dominant)
	accentVoice := voiceFor(accent)

	heroLine := "an unnamed centre"
	if result.Hero != nil {
		heroLine = result.Hero.Name
	}
	card.Tagline = fmt.Sprintf("A %s %s composition built around %s.",
		pickWord(dominantVoice.Adjectives, req.Identifier), displayFamily(dominant), heroLine)

	card.Paragraphs = []string{
		fmt.Sprintf("It opens like %s, then settles into its %s heart.",
			pickWord(dominantVoice.Imagery, req.Identifier), displayFamily(secondary)),
		fmt.Sprintf("A %s %s accent runs underneath, binding %d materials into one line.",
			pickWord(accentVoice.Adjectives, req.Identifier), displayFamily(accent), result.IngredientCount),
	}

	card.SteepingAdvice = fmt.Sprintf("Rest the blend %d–%d days. %s",
		result.Steeping.MinDays, result.Steeping.MaxDays, result.Steeping.Notes)

	return card
}

func title(dominant, identifier string) string {
	base := displayFamily(dominant)
	if base == "" {
		base = "Untitled"
	}
	suffix := checksum(identifier)%899 + 100
	return fmt.Sprintf("%s No. %d", capitalize(base), suffix)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func accords(families ...string) []string {
	var out []string
	for _, family := range families {
		if family == "" {
			continue
		}
		voice := voiceFor(family)
		out = append(out, fmt.Sprintf("%s %s", voice.Adjectives[0], displayFamily(family)))
	}
	return out
}

func pyramid(formula engine.Formula) []PyramidLine {
	byLayer := map[catalog.Layer][]string{}
	formula.Walk(func(_ string, layer catalog.Layer, pick *engine.Pick) {
		byLayer[layer] = append(byLayer[layer], pick.Name)
	})

	var lines []PyramidLine
	for _, layer := range catalog.Layers() {
		if len(byLayer[layer]) == 0 {
			continue
		}
		lines = append(lines, PyramidLine{Layer: layer, Names: byLayer[layer]})
	}
	return lines
}

// pickWord selects a vocabulary entry deterministically from the identifier
// so the same blend always reads the same way.
func pickWord(words []string, identifier string) string {
	if len(words) == 0 {
		return ""
	}
	return words[checksum(identifier)%uint32(len(words))]
}

func checksum(value string) uint32 {
	var sum uint32
	for i := 0; i < len(value); i++ {
		sum = sum*31 + uint32(value[i])
	}
	return sum
}

func displayFamily(family string) string {
	return strings.TrimSpace(family)
}

package pages

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"aromaforge/internal/catalog"
	"aromaforge/internal/engine"
	"aromaforge/internal/narrative"
)

// FormulaCard renders one generation result with its scent card copy. It is
// returned into the workspace's card slot by the compose endpoint.
func FormulaCard(result engine.Result, card narrative.Card) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="formula"><header><h2>%s</h2><p class="tagline">%s</p><p class="accords">%s</p></header>`,
			html.EscapeString(card.Title),
			html.EscapeString(card.Tagline),
			html.EscapeString(strings.Join(card.Accords, " · "))); err != nil {
			return err
		}

		if err := formulaTable(w, result); err != nil {
			return err
		}

		for _, paragraph := range card.Paragraphs {
			if _, err := fmt.Fprintf(w, `<p class="story">%s</p>`, html.EscapeString(paragraph)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<p class="steeping"><strong>%s</strong> — %s</p>`,
			html.EscapeString(result.Steeping.Label), html.EscapeString(card.SteepingAdvice)); err != nil {
			return err
		}

		if err := noticeList(w, "warnings", result.Warnings); err != nil {
			return err
		}
		if err := noticeList(w, "notes", card.Notes); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</article>`)
		return err
	})
}

func formulaTable(w io.Writer, result engine.Result) error {
	if _, err := io.WriteString(w, `<table class="pyramid"><thead><tr><th>Family</th><th>Layer</th><th>Material</th><th>Band</th><th>Supplier</th></tr></thead><tbody>`); err != nil {
		return err
	}
	var walkErr error
	result.Formula.Walk(func(family string, layer catalog.Layer, pick *engine.Pick) {
		if walkErr != nil {
			return
		}
		marker := ""
		if result.Hero != nil && pick.Name == result.Hero.Name && family == result.HeroFamily {
			marker = ` class="hero"`
		}
		_, walkErr = fmt.Fprintf(w, `<tr%s><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
			marker,
			html.EscapeString(DisplayFamily(family)),
			html.EscapeString(string(layer)),
			html.EscapeString(pick.Name),
			html.EscapeString(FormatBand(pick.Percent)),
			html.EscapeString(pick.Supplier))
	})
	if walkErr != nil {
		return walkErr
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}

func noticeList(w io.Writer, class string, items []string) error {
	if len(items) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<ul class="%s">`, class); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(w, `<li>%s</li>`, html.EscapeString(item)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}

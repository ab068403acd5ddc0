package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"aromaforge/internal/views/layout"
	"aromaforge/models"
)

// WorkspaceData carries everything the composer workspace needs to render.
type WorkspaceData struct {
	UserName      string
	Concentration string
	Intensity     string
	Families      []string
	RecentBlends  []models.Blend
}

// Workspace renders the full composer workspace page.
func Workspace(data WorkspaceData) templ.Component {
	return layout.Layout("Composer", true, WorkspacePartial(data))
}

// WorkspacePartial renders the workspace body, for htmx swaps.
func WorkspacePartial(data WorkspaceData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		greeting := "Welcome back"
		if data.UserName != "" {
			greeting = "Welcome back, " + html.EscapeString(data.UserName)
		}
		if _, err := fmt.Fprintf(w, `<section class="composer" id="composer"><h1>%s</h1>`, greeting); err != nil {
			return err
		}
		if err := composeForm(w, data); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div id="formula-card" class="formula-card"></div>`); err != nil {
			return err
		}
		if err := recentBlends(w, data.RecentBlends); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func composeForm(w io.Writer, data WorkspaceData) error {
	if _, err := io.WriteString(w, `<form class="compose-form" hx-post="/app/api/compose" hx-target="#formula-card" hx-swap="innerHTML">`); err != nil {
		return err
	}
	for _, field := range []struct {
		name  string
		label string
	}{
		{"dominant", "Dominant family"},
		{"secondary", "Secondary family"},
		{"accent", "Accent family"},
	} {
		if _, err := fmt.Fprintf(w, `<label>%s<select name="%s">`, field.label, field.name); err != nil {
			return err
		}
		for _, family := range data.Families {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`, html.EscapeString(family), html.EscapeString(DisplayFamily(family))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select></label>`); err != nil {
			return err
		}
	}
	if err := selectField(w, "concentration", "Concentration", data.Concentration, []string{
		models.ConcentrationExtrait,
		models.ConcentrationEauDeParfum,
		models.ConcentrationEauDeToilette,
		models.ConcentrationEauFraiche,
	}); err != nil {
		return err
	}
	if err := selectField(w, "intensity", "Projection", data.Intensity, []string{
		models.IntensityTrail,
		models.IntensityRoom,
		models.IntensitySkin,
		models.IntensitySubtle,
	}); err != nil {
		return err
	}
	if err := selectField(w, "occasion", "Occasion", "", []string{
		"evening", "office", "summer daytime", "special occasion",
	}); err != nil {
		return err
	}
	_, err := io.WriteString(w, `<label>Batch identifier<input type="text" name="identifier" placeholder="e.g. OWS-001" required></label>
<button type="submit">Compose</button>
</form>`)
	return err
}

func selectField(w io.Writer, name, label, selected string, options []string) error {
	if _, err := fmt.Fprintf(w, `<label>%s<select name="%s">`, label, name); err != nil {
		return err
	}
	for _, option := range options {
		marker := ""
		if option == selected {
			marker = ` selected`
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, html.EscapeString(option), marker, html.EscapeString(option)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></label>`)
	return err
}

func recentBlends(w io.Writer, blends []models.Blend) error {
	if len(blends) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, `<aside class="recent-blends"><h2>Saved blends</h2><ul>`); err != nil {
		return err
	}
	for _, blend := range blends {
		if _, err := fmt.Fprintf(w, `<li><span class="blend-name">%s</span> <span class="blend-version">v%d</span> <span class="blend-families">%s / %s / %s</span></li>`,
			html.EscapeString(blend.Name), blend.Version,
			html.EscapeString(blend.Dominant), html.EscapeString(blend.Secondary), html.EscapeString(blend.Accent)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul></aside>`)
	return err
}

package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"aromaforge/internal/views/layout"
)

// Landing renders the public front page.
func Landing(authenticated bool) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="hero">
<h1>AromaForge</h1>
<p>Pick three aromatic families and an occasion; the composer drafts a layered
formula with working percentage bands, flags regulatory ceilings, and tells
you how long the blend should rest before you judge it.</p>
<p><a class="cta" href="/app">Open the composer</a></p>
</section>`)
		return err
	})
	return layout.Layout("AromaForge", authenticated, content)
}

package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"aromaforge/internal/batch"
	"aromaforge/internal/views/layout"
)

// BatchSheet renders a compounding sheet ready for the bench printer.
func BatchSheet(sheet batch.Sheet) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="batch-sheet">
<header>
<h1>Batch sheet</h1>
<dl class="batch-meta">
<dt>Lot</dt><dd>%s</dd>
<dt>Run date</dt><dd>%s</dd>
<dt>Target volume</dt><dd>%.0f mL</dd>
<dt>Concentration</dt><dd>%s</dd>
</dl>
</header>`,
			html.EscapeString(sheet.LotNumber),
			sheet.RunDate.Format("2006-01-02"),
			sheet.TargetML,
			html.EscapeString(sheet.Concentration)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="weigh-out"><thead><tr><th>#</th><th>Material</th><th>Family</th><th>Layer</th><th>Band</th><th>Weight</th><th>Supplier</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range sheet.Rows {
			if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				row.Order,
				html.EscapeString(row.Name),
				html.EscapeString(DisplayFamily(row.Family)),
				html.EscapeString(string(row.Layer)),
				html.EscapeString(FormatBand(row.Percent)),
				FormatGrams(row.Grams),
				html.EscapeString(row.Supplier)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</tbody><tfoot>
<tr><td colspan="5">Perfume oil</td><td colspan="2">%s</td></tr>
<tr><td colspan="5">Carrier dilutant</td><td colspan="2">%s</td></tr>
<tr><td colspan="5">Ethanol</td><td colspan="2">%s</td></tr>
</tfoot></table>`,
			FormatGrams(sheet.OilGrams),
			FormatGrams(sheet.DilutantGrams),
			FormatGrams(sheet.AlcoholGrams)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<p class="steeping">Rest %s before evaluation (%s).</p>`,
			FormatDays(sheet.Steeping.MinDays, sheet.Steeping.MaxDays),
			html.EscapeString(sheet.Steeping.Label)); err != nil {
			return err
		}
		if err := noticeList(w, "warnings", sheet.Warnings); err != nil {
			return err
		}
		if err := noticeList(w, "notes", sheet.Notes); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
	return layout.Layout("Batch sheet", true, content)
}

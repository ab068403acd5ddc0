package layout

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps page content in the shared document shell. The navigation
// adapts to the session state so protected links only show up once a user is
// signed in.
func Layout(title string, authenticated bool, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/assets/app.css">
<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
</head>
<body class="atelier">
`, html.EscapeString(title)); err != nil {
			return err
		}
		if err := navigation(authenticated).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="workspace">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>
</body>
</html>
`)
		return err
	})
}

func navigation(authenticated bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="topbar"><a class="brand" href="/">AromaForge</a><div class="links">`); err != nil {
			return err
		}
		if authenticated {
			if _, err := io.WriteString(w, `<a href="/app">Composer</a><a href="/logout">Sign out</a>`); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/login">Sign in</a><a href="/signup">Create account</a>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></nav>`)
		return err
	})
}

package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"aromaforge/internal/views/layout"
)

// Login renders the full sign-in page.
func Login(message, email string) templ.Component {
	return layout.Layout("Sign in", false, LoginPartial(message, email))
}

// LoginPartial renders only the sign-in form, for htmx swaps.
func LoginPartial(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth-card" id="auth"><h1>Sign in</h1>`); err != nil {
			return err
		}
		if err := writeFlash(w, message); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="/login" hx-post="/login" hx-target="#auth" hx-swap="outerHTML">
<label>Email<input type="email" name="email" value="%s" required></label>
<label>Password<input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
<p class="auth-alt">New here? <a href="/signup">Create an account</a>.</p>
</section>`, html.EscapeString(email))
		return err
	})
}

// Signup renders the full registration page.
func Signup(message, name, email string) templ.Component {
	return layout.Layout("Create account", false, SignupPartial(message, name, email))
}

// SignupPartial renders only the registration form, for htmx swaps.
func SignupPartial(message, name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth-card" id="auth"><h1>Create account</h1>`); err != nil {
			return err
		}
		if err := writeFlash(w, message); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="/signup" hx-post="/signup" hx-target="#auth" hx-swap="outerHTML">
<label>Name<input type="text" name="name" value="%s"></label>
<label>Email<input type="email" name="email" value="%s" required></label>
<label>Password<input type="password" name="password" required minlength="8"></label>
<label>Confirm password<input type="password" name="confirm_password" required minlength="8"></label>
<button type="submit">Create account</button>
</form>
<p class="auth-alt">Already registered? <a href="/login">Sign in</a>.</p>
</section>`, html.EscapeString(name), html.EscapeString(email))
		return err
	})
}

func writeFlash(w io.Writer, message string) error {
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="flash">%s</p>`, html.EscapeString(message))
	return err
}

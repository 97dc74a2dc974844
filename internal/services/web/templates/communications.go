package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// CommunicationsPage renders the communications placeholder fragment. The
// action button is intentionally inert until messaging tools ship.
func CommunicationsPage(loc Localizer) templ.Component {
	title := T(loc, "communications.title")
	comingSoon := T(loc, "communications.coming_soon")
	description := T(loc, "communications.description")
	action := T(loc, "communications.notify_me")

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="communications" data-testid="communications-root">`)
		b.WriteString(`<h2>` + templ.EscapeString(title) + `</h2>`)
		b.WriteString(`<p class="coming-soon">` + templ.EscapeString(comingSoon) + `</p>`)
		b.WriteString(`<p class="description">` + templ.EscapeString(description) + `</p>`)
		b.WriteString(`<button type="button" class="btn" disabled>` + templ.EscapeString(action) + `</button>`)
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Package templates holds the templ components shared by web modules.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/branding"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

// ComposePageTitle appends the brand suffix unless the title already carries it.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

// AppMainContent wraps page fragments in the swap target shared by full-page
// and HTMX responses.
func AppMainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		if _, err := io.WriteString(w, `<main id="main" class="app-main">`); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

// AppLayout renders the full document shell around a page fragment.
func AppLayout(title string, viewer module.Viewer, lang string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		var b strings.Builder
		b.WriteString("<!doctype html>")
		b.WriteString(`<html lang="` + templ.EscapeString(lang) + `">`)
		b.WriteString(`<head>`)
		b.WriteString(`<meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + templ.EscapeString(ComposePageTitle(title)) + `</title>`)
		b.WriteString(`<link rel="stylesheet" href="` + routepath.StaticPrefix + `app.css">`)
		b.WriteString(`<script src="` + routepath.StaticPrefix + `app.js" defer></script>`)
		b.WriteString(`</head>`)
		b.WriteString(`<body>`)
		b.WriteString(`<header class="app-header">`)
		b.WriteString(`<a class="app-brand" href="` + routepath.Root + `">` + templ.EscapeString(branding.AppName) + `</a>`)
		b.WriteString(`<nav class="app-nav">`)
		b.WriteString(`<a href="` + routepath.Dashboard + `">` + templ.EscapeString(T(loc, "nav.dashboard")) + `</a>`)
		b.WriteString(`<a href="` + routepath.Events + `">` + templ.EscapeString(T(loc, "nav.events")) + `</a>`)
		b.WriteString(`<a href="` + routepath.Communications + `">` + templ.EscapeString(T(loc, "nav.communications")) + `</a>`)
		b.WriteString(`</nav>`)
		if name := strings.TrimSpace(viewer.DisplayName); name != "" {
			b.WriteString(`<span class="app-viewer">` + templ.EscapeString(name) + `</span>`)
		}
		b.WriteString(`</header>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		main := AppMainContent()
		if err := main.Render(templ.WithChildren(ctx, children), w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/branding"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
)

func TestComposePageTitleAddsBrandNameSuffix(t *testing.T) {
	t.Parallel()

	got := ComposePageTitle("Dashboard")
	want := "Dashboard | " + branding.AppName
	if got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleSkipsWhenAlreadySuffixed(t *testing.T) {
	t.Parallel()

	want := "Dashboard | " + branding.AppName
	if got := ComposePageTitle(want); got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleEmptyFallsBackToBrand(t *testing.T) {
	t.Parallel()

	if got := ComposePageTitle("  "); got != branding.AppName {
		t.Fatalf("ComposePageTitle = %q, want %q", got, branding.AppName)
	}
}

func TestAppLayoutRendersChromeAroundChildren(t *testing.T) {
	t.Parallel()

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hello</p>`)
		return err
	})

	var b strings.Builder
	layout := AppLayout("Dashboard", module.Viewer{DisplayName: "Ana"}, "en-US", enLocalizer())
	if err := layout.Render(templ.WithChildren(context.Background(), child), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := b.String()

	if !strings.Contains(got, `<html lang="en-US">`) {
		t.Fatalf("missing lang attribute in %q", got)
	}
	if !strings.Contains(got, "<title>Dashboard | "+branding.AppName+"</title>") {
		t.Fatalf("missing page title in %q", got)
	}
	if !strings.Contains(got, `<p id="child">hello</p>`) {
		t.Fatalf("missing child fragment in %q", got)
	}
	if !strings.Contains(got, `<span class="app-viewer">Ana</span>`) {
		t.Fatalf("missing viewer name in %q", got)
	}
	for _, link := range []string{`href="/dashboard"`, `href="/events"`, `href="/communications"`} {
		if !strings.Contains(got, link) {
			t.Fatalf("missing nav link %s in %q", link, got)
		}
	}
	if !strings.HasSuffix(got, "</body></html>") {
		t.Fatalf("layout must close the document, got %q", got)
	}
}

func TestAppLayoutEscapesViewerName(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	layout := AppLayout("Dashboard", module.Viewer{DisplayName: "<script>alert(1)</script>"}, "en-US", enLocalizer())
	if err := layout.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(b.String(), "<script>alert(1)</script>") {
		t.Fatal("viewer name must be escaped")
	}
}

func TestAppMainContentWrapsChildren(t *testing.T) {
	t.Parallel()

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "fragment")
		return err
	})
	var b strings.Builder
	if err := AppMainContent().Render(templ.WithChildren(context.Background(), child), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := b.String()
	if got != `<main id="main" class="app-main">fragment</main>` {
		t.Fatalf("unexpected markup %q", got)
	}
	if strings.Contains(strings.ToLower(got), "<html") {
		t.Fatal("fragment wrapper must not include the document shell")
	}
}

// Package modulehandler provides a composable base for web module handlers.
//
// Web modules share common handler infrastructure for user resolution,
// localization, page rendering, and error handling. This package extracts that
// shared scaffold so modules embed it rather than duplicating it.
package modulehandler

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/httpx"
	webi18n "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/i18n"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/pagerender"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/weberror"
	webtemplates "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by module handlers.
// Embed this in module handler structs to get standard user resolution,
// localization, page rendering, and error writing without duplicating
// boilerplate.
type Base struct {
	resolveUserID   module.ResolveUserID
	resolveLanguage module.ResolveLanguage
	resolveViewer   module.ResolveViewer
}

// NewBase builds a handler base from explicit resolver functions.
func NewBase(resolveUserID module.ResolveUserID, resolveLanguage module.ResolveLanguage, resolveViewer module.ResolveViewer) Base {
	return Base{
		resolveUserID:   resolveUserID,
		resolveLanguage: resolveLanguage,
		resolveViewer:   resolveViewer,
	}
}

// NewTestBase builds a handler base with no-op resolvers suitable for tests
// that do not exercise user resolution, localization, or viewer state.
func NewTestBase() Base {
	return Base{
		resolveUserID:   func(*http.Request) int64 { return 0 },
		resolveLanguage: func(*http.Request) string { return "" },
		resolveViewer:   func(*http.Request) module.Viewer { return module.Viewer{} },
	}
}

func (b Base) dependencies() module.Dependencies {
	return module.Dependencies{
		ResolveUserID:   b.resolveUserID,
		ResolveLanguage: b.resolveLanguage,
		ResolveViewer:   b.resolveViewer,
	}
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.dependencies())
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.dependencies())
}

// RequestUserID extracts the acting user ID from the request. Zero means the
// request carries no resolvable user.
func (b Base) RequestUserID(r *http.Request) int64 {
	if r == nil || b.resolveUserID == nil {
		return 0
	}
	return b.resolveUserID(r)
}

// RequestContextAndUserID returns the request context and the acting user ID.
func (b Base) RequestContextAndUserID(r *http.Request) (context.Context, int64) {
	return httpx.RequestContext(r), b.RequestUserID(r)
}

// WritePage renders a full module page (HTMX-aware) with the given title,
// status, and content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b.dependencies(), pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

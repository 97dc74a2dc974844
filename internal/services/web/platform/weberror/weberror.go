// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
	errorsi18n "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors/i18n"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/httpx"
	webi18n "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/i18n"
	webtemplates "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, lang string, err error) string {
	if err == nil {
		return ""
	}
	if appErr := apperrors.AsError(err); appErr != nil {
		msg := errorsi18n.GetCatalog(lang).Format(string(appErr.Code), appErr.Metadata)
		if msg != "" && msg != string(appErr.Code) {
			return msg
		}
	}
	if loc != nil {
		if msg := strings.TrimSpace(loc.Sprintf("errors.generic")); msg != "" && msg != "errors.generic" {
			return msg
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized app-shell error response for full-page and
// HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	fragment := webtemplates.AppErrorState(statusCode, loc)
	ctx := httpx.RequestContext(r)

	if httpx.IsHTMXRequest(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusCode)
		content := webtemplates.AppMainContent()
		if err := content.Render(templ.WithChildren(ctx, fragment), w); err != nil {
			http.Error(w, PublicMessage(loc, lang, err), statusCode)
		}
		return
	}

	viewer := module.Viewer{}
	if deps.ResolveViewer != nil {
		viewer = deps.ResolveViewer(r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	title := webtemplates.AppErrorPageTitle(statusCode, loc)
	layout := webtemplates.AppLayout(title, viewer, lang, loc)
	if err := layout.Render(templ.WithChildren(ctx, fragment), w); err != nil {
		http.Error(w, PublicMessage(loc, lang, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	http.Error(w, PublicMessage(loc, lang, err), statusCode)
}

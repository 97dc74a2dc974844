package templates

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey   = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey  = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey     = "web.error.title_not_found"
	appErrorHeadingServerErrKey    = "web.error.title_server_error"
	appErrorMessageNotFoundKey     = "web.error.message_not_found"
	appErrorMessageServerErrKey    = "web.error.message_server_error"
	appErrorBackToDashboardTextKey = "web.error.action_back_to_dashboard"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the shared error fragment for app pages.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	status := normalizeAppErrorStatus(statusCode)
	heading := appErrorHeading(status, loc)
	message := appErrorMessage(status, loc)
	action := T(loc, appErrorBackToDashboardTextKey)

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="error-state" data-status="`)
		b.WriteString(templ.EscapeString(statusText(status)))
		b.WriteString(`">`)
		b.WriteString(`<h2>` + templ.EscapeString(heading) + `</h2>`)
		b.WriteString(`<p>` + templ.EscapeString(message) + `</p>`)
		b.WriteString(`<a class="btn" href="` + routepath.Dashboard + `">` + templ.EscapeString(action) + `</a>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func statusText(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "404"
	default:
		return "500"
	}
}

package communications

import (
	"net/http"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/modulehandler"
	webtemplates "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// handleIndex renders the static placeholder. It reads no request state
// beyond localization, so repeated renders are identical.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "communications.title"), http.StatusOK, webtemplates.CommunicationsPage(loc))
}

package dashboard

import (
	"net/http"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/modulehandler"
	webtemplates "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	stats, err := h.service.loadStats(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "dashboard.title"), http.StatusOK, webtemplates.DashboardPage(stats, loc))
}

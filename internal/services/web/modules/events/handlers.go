package events

import (
	"errors"
	"net/http"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
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

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, organizerID := h.RequestContextAndUserID(r)
	events, err := h.service.listEvents(ctx, organizerID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "events.title"), http.StatusOK, webtemplates.EventListPage(events, loc))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	detail, err := h.service.loadEventDetail(ctx, r.PathValue("eventID"))
	if err != nil {
		if errors.Is(err, eventsdomain.ErrNotFound) {
			h.WriteNotFound(w, r)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, detail.Event.Title, http.StatusOK, webtemplates.EventDetailPage(detail.Event, detail.RSVPs, detail.Messages, loc))
}

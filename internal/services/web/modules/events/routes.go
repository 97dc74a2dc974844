package events

import (
	"net/http"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Events, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.EventsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.EventPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.EventRestPattern, h.WriteNotFound)
}

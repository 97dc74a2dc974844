package communications

import (
	"net/http"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Communications, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CommunicationsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CommunicationsPrefix+"{rest...}", h.WriteNotFound)
}

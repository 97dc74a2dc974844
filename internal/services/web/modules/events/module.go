// Package events serves the organizer event directory pages.
package events

import (
	"net/http"

	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/modulehandler"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

// Module provides event directory routes.
type Module struct{}

// New returns an events module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "events" }

// Mount wires event route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	base := modulehandler.NewBase(deps.ResolveUserID, deps.ResolveLanguage, deps.ResolveViewer)
	h := newHandlers(newService(deps.Events), base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.EventsPrefix, Handler: mux}, nil
}

// Package communications serves the messaging placeholder page.
package communications

import (
	"net/http"

	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/modulehandler"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

// Module provides the communications placeholder route.
type Module struct{}

// New returns a communications module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "communications" }

// Mount wires the placeholder route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	base := modulehandler.NewBase(deps.ResolveUserID, deps.ResolveLanguage, deps.ResolveViewer)
	h := newHandlers(base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.CommunicationsPrefix, Handler: mux}, nil
}

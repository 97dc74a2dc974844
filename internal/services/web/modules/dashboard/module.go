// Package dashboard serves the organizer dashboard and the root fallback.
package dashboard

import (
	"net/http"

	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/modulehandler"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

// Module provides dashboard routes.
type Module struct{}

// New returns a dashboard module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers. The module owns the root prefix so it
// also serves the app-shell 404 for unknown paths.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	base := modulehandler.NewBase(deps.ResolveUserID, deps.ResolveLanguage, deps.ResolveViewer)
	h := newHandlers(newService(deps.Stats), base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/modules/communications"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/modules/dashboard"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/modules/events"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// DefaultModules returns the stable web modules in mount order. The dashboard
// module comes first because it owns the root prefix and the app-shell 404.
func DefaultModules() []Module {
	return []Module{
		dashboard.New(),
		events.New(),
		communications.New(),
	}
}

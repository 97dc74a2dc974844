package service

import (
	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain/invite"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/mcp/domain"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registrationModule groups tool registrations so the server assembly names
// each feature area.
type registrationModule struct {
	name     string
	register func(*mcp.Server)
}

const (
	dashboardToolsModuleName = "dashboard-tools"
	eventToolsModuleName     = "event-tools"
	rsvpToolsModuleName      = "rsvp-tools"
	messageToolsModuleName   = "message-tools"
)

func newRegistrationModules(deps Dependencies) []registrationModule {
	return []registrationModule{
		{
			name: dashboardToolsModuleName,
			register: func(server *mcp.Server) {
				registerDashboardTools(server, deps.Stats)
			},
		},
		{
			name: eventToolsModuleName,
			register: func(server *mcp.Server) {
				registerEventTools(server, deps.Events)
			},
		},
		{
			name: rsvpToolsModuleName,
			register: func(server *mcp.Server) {
				registerRSVPTools(server, deps.Events, deps.Grants)
			},
		},
		{
			name: messageToolsModuleName,
			register: func(server *mcp.Server) {
				registerMessageTools(server, deps.Events)
			},
		},
	}
}

func registerDashboardTools(server *mcp.Server, provider statsdomain.Provider) {
	mcp.AddTool(server, domain.DashboardStatsTool(), domain.DashboardStatsHandler(provider))
}

func registerEventTools(server *mcp.Server, events *eventsdomain.Service) {
	mcp.AddTool(server, domain.EventCreateTool(), domain.EventCreateHandler(events))
	mcp.AddTool(server, domain.EventGetTool(), domain.EventGetHandler(events))
	mcp.AddTool(server, domain.EventListTool(), domain.EventListHandler(events))
	mcp.AddTool(server, domain.EventPublishTool(), domain.EventPublishHandler(events))
	mcp.AddTool(server, domain.EventCancelTool(), domain.EventCancelHandler(events))
}

func registerRSVPTools(server *mcp.Server, events *eventsdomain.Service, grants *invite.GrantConfig) {
	mcp.AddTool(server, domain.RSVPSubmitTool(), domain.RSVPSubmitHandler(events, grants))
	mcp.AddTool(server, domain.RSVPListTool(), domain.RSVPListHandler(events))
}

func registerMessageTools(server *mcp.Server, events *eventsdomain.Service) {
	mcp.AddTool(server, domain.MessageSendTool(), domain.MessageSendHandler(events))
	mcp.AddTool(server, domain.MessageListTool(), domain.MessageListHandler(events))
}

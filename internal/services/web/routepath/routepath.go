// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                 = "/"
	Health               = "/up"
	StaticPrefix         = "/static/"
	Dashboard            = "/dashboard"
	DashboardPrefix      = "/dashboard/"
	Events               = "/events"
	EventsPrefix         = "/events/"
	EventPattern         = EventsPrefix + "{eventID}"
	EventRestPattern     = EventsPrefix + "{eventID}/{rest...}"
	Communications       = "/communications"
	CommunicationsPrefix = "/communications/"
)

// Event returns the event detail route.
func Event(eventID string) string {
	return EventsPrefix + escapeSegment(eventID)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
)

// Viewer contains user-facing chrome data for app pages.
type Viewer struct {
	DisplayName string
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveUserID resolves the acting organizer id for a request. Zero means
// no organizer could be resolved.
type ResolveUserID func(*http.Request) int64

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// StatsClient loads dashboard statistics for one organizer.
type StatsClient interface {
	GetDashboardStats(ctx context.Context, userID int64) (statsdomain.DashboardStats, error)
}

// EventsClient exposes the event directory operations web modules render.
type EventsClient interface {
	ListEvents(ctx context.Context, input eventsdomain.ListEventsInput) (eventsdomain.EventPage, error)
	GetEvent(ctx context.Context, eventID string) (eventsdomain.Event, error)
	ListRSVPs(ctx context.Context, input eventsdomain.ListRSVPsInput) (eventsdomain.RSVPPage, error)
	ListMessages(ctx context.Context, input eventsdomain.ListMessagesInput) (eventsdomain.MessagePage, error)
}

// Dependencies carries shared composition state injected into module mounts.
// Modules receive clients and resolvers here instead of reaching for globals.
type Dependencies struct {
	Stats           StatsClient
	Events          EventsClient
	ResolveViewer   ResolveViewer
	ResolveUserID   ResolveUserID
	ResolveLanguage ResolveLanguage
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

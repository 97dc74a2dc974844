package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/timeouts"
)

var tracer = otel.Tracer("event-connect/stats")

// ErrSourceNotConfigured indicates the service is missing its count source.
var ErrSourceNotConfigured = errors.New("stats source is not configured")

// Trailing windows behind the dashboard cards.
const (
	upcomingWindow = 30 * 24 * time.Hour
	rsvpWindow     = 7 * 24 * time.Hour
	messageWindow  = 30 * 24 * time.Hour
	creationWindow = 30 * 24 * time.Hour
)

// Provider supplies dashboard statistics for one user. Consumers receive an
// implementation through their dependencies rather than a package global.
type Provider interface {
	GetDashboardStats(ctx context.Context, userID int64) (DashboardStats, error)
}

// Source counts stored event activity for one organizer. The events SQLite
// store satisfies it.
type Source interface {
	CountEventsByOrganizer(ctx context.Context, organizerID int64) (int, error)
	CountActiveEventsByOrganizer(ctx context.Context, organizerID int64, now time.Time) (int, error)
	CountUpcomingEventsByOrganizer(ctx context.Context, organizerID int64, from time.Time, until time.Time) (int, error)
	CountAttendingRSVPsByOrganizer(ctx context.Context, organizerID int64) (int, error)
	CountRSVPsByOrganizerSince(ctx context.Context, organizerID int64, since time.Time) (int, error)
	CountMessagesBySenderSince(ctx context.Context, senderID int64, since time.Time) (int, error)
	CountEventsCreatedByOrganizerSince(ctx context.Context, organizerID int64, since time.Time) (int, error)
}

// Service aggregates dashboard statistics from a count source.
type Service struct {
	source Source
	clock  func() time.Time
}

// NewService wires a stats service. A nil clock defaults to time.Now.
func NewService(source Source, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{source: source, clock: clock}
}

// GetDashboardStats aggregates the dashboard counters for one user. Unknown
// users produce all-zero stats. The result is checked against the output
// contract before it is returned.
func (s *Service) GetDashboardStats(ctx context.Context, userID int64) (DashboardStats, error) {
	if s == nil || s.source == nil {
		return DashboardStats{}, ErrSourceNotConfigured
	}
	if userID <= 0 {
		return DashboardStats{}, apperrors.New(apperrors.CodeStatsUserIDInvalid, "user id must be a positive integer")
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.StatsQuery)
	defer cancel()

	ctx, span := tracer.Start(ctx, "stats.GetDashboardStats",
		trace.WithAttributes(attribute.Int64("user.id", userID)))
	defer span.End()

	stats, err := s.aggregate(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return DashboardStats{}, err
	}

	if err := ValidateDashboardStats(stats); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return DashboardStats{}, err
	}
	return stats, nil
}

// aggregate runs the per-card count queries against the source.
func (s *Service) aggregate(ctx context.Context, userID int64) (DashboardStats, error) {
	now := s.clock().UTC()

	var stats DashboardStats
	var err error
	if stats.TotalEvents, err = s.source.CountEventsByOrganizer(ctx, userID); err != nil {
		return DashboardStats{}, fmt.Errorf("count events: %w", err)
	}
	if stats.ActiveEvents, err = s.source.CountActiveEventsByOrganizer(ctx, userID, now); err != nil {
		return DashboardStats{}, fmt.Errorf("count active events: %w", err)
	}
	if stats.UpcomingEvents, err = s.source.CountUpcomingEventsByOrganizer(ctx, userID, now, now.Add(upcomingWindow)); err != nil {
		return DashboardStats{}, fmt.Errorf("count upcoming events: %w", err)
	}
	if stats.TotalAttendees, err = s.source.CountAttendingRSVPsByOrganizer(ctx, userID); err != nil {
		return DashboardStats{}, fmt.Errorf("count attendees: %w", err)
	}
	if stats.RecentActivity.NewRSVPs, err = s.source.CountRSVPsByOrganizerSince(ctx, userID, now.Add(-rsvpWindow)); err != nil {
		return DashboardStats{}, fmt.Errorf("count recent rsvps: %w", err)
	}
	if stats.RecentActivity.MessagesSent, err = s.source.CountMessagesBySenderSince(ctx, userID, now.Add(-messageWindow)); err != nil {
		return DashboardStats{}, fmt.Errorf("count recent messages: %w", err)
	}
	if stats.RecentActivity.EventsCreated, err = s.source.CountEventsCreatedByOrganizerSince(ctx, userID, now.Add(-creationWindow)); err != nil {
		return DashboardStats{}, fmt.Errorf("count recent events: %w", err)
	}
	return stats, nil
}

var _ Provider = (*Service)(nil)

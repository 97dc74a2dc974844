package domain

import (
	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
)

// statsField pairs a wire field name with its extractor so the output
// contract can be checked without knowing which transport asked.
type statsField struct {
	name  string
	value func(DashboardStats) int
}

// statsFields lists every counter in the stats payload. All of them must be
// non-negative.
var statsFields = []statsField{
	{name: "totalEvents", value: func(s DashboardStats) int { return s.TotalEvents }},
	{name: "activeEvents", value: func(s DashboardStats) int { return s.ActiveEvents }},
	{name: "totalAttendees", value: func(s DashboardStats) int { return s.TotalAttendees }},
	{name: "upcomingEvents", value: func(s DashboardStats) int { return s.UpcomingEvents }},
	{name: "recentActivity.newRSVPs", value: func(s DashboardStats) int { return s.RecentActivity.NewRSVPs }},
	{name: "recentActivity.messagesSent", value: func(s DashboardStats) int { return s.RecentActivity.MessagesSent }},
	{name: "recentActivity.eventsCreated", value: func(s DashboardStats) int { return s.RecentActivity.EventsCreated }},
}

// ValidateDashboardStats checks a stats value against the output contract:
// every counter is non-negative and active events never exceed total events.
func ValidateDashboardStats(stats DashboardStats) error {
	for _, field := range statsFields {
		if field.value(stats) < 0 {
			return apperrors.WithMetadata(
				apperrors.CodeStatsContractViolation,
				"dashboard stats counter is negative",
				map[string]string{"Field": field.name},
			)
		}
	}
	if stats.ActiveEvents > stats.TotalEvents {
		return apperrors.WithMetadata(
			apperrors.CodeStatsContractViolation,
			"active events exceed total events",
			map[string]string{"Field": "activeEvents"},
		)
	}
	return nil
}

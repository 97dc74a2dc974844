package dashboard

import (
	"context"

	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
)

type stubStatsClient struct {
	stats      statsdomain.DashboardStats
	err        error
	calls      int
	lastUserID int64
}

func (s *stubStatsClient) GetDashboardStats(_ context.Context, userID int64) (statsdomain.DashboardStats, error) {
	s.calls++
	s.lastUserID = userID
	if s.err != nil {
		return statsdomain.DashboardStats{}, s.err
	}
	return s.stats, nil
}

func demoStats() statsdomain.DashboardStats {
	return statsdomain.DashboardStats{
		TotalEvents:    10,
		ActiveEvents:   4,
		TotalAttendees: 120,
		UpcomingEvents: 3,
		RecentActivity: statsdomain.RecentActivity{
			NewRSVPs:      5,
			MessagesSent:  30,
			EventsCreated: 2,
		},
	}
}

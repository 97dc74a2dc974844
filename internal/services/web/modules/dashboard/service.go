package dashboard

import (
	"context"

	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
)

// service loads the dashboard snapshot rendered by the stat cards.
type service struct {
	stats module.StatsClient
}

type unavailableStats struct{}

func (unavailableStats) GetDashboardStats(context.Context, int64) (statsdomain.DashboardStats, error) {
	return statsdomain.DashboardStats{}, nil
}

func newService(stats module.StatsClient) service {
	if stats == nil {
		stats = unavailableStats{}
	}
	return service{stats: stats}
}

// loadStats returns dashboard stats for one organizer. An unresolved user
// renders as zero activity instead of an error page.
func (s service) loadStats(ctx context.Context, userID int64) (statsdomain.DashboardStats, error) {
	if userID <= 0 {
		return statsdomain.DashboardStats{}, nil
	}
	return s.stats.GetDashboardStats(ctx, userID)
}

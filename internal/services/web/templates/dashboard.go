package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
)

// StatCard models one dashboard stat tile.
type StatCard struct {
	Label string
	Value string
	Hint  string
}

// DashboardStatCardData maps dashboard statistics onto the four stat tiles.
// The mapping is a pure projection: the same stats always produce the same
// cards.
func DashboardStatCardData(stats statsdomain.DashboardStats, loc Localizer) []StatCard {
	return []StatCard{
		{
			Label: T(loc, "dashboard.card.total_events"),
			Value: strconv.Itoa(stats.TotalEvents),
			Hint:  T(loc, "dashboard.card.total_events_hint", stats.ActiveEvents),
		},
		{
			Label: T(loc, "dashboard.card.total_attendees"),
			Value: strconv.Itoa(stats.TotalAttendees),
			Hint:  T(loc, "dashboard.card.total_attendees_hint", stats.RecentActivity.NewRSVPs),
		},
		{
			Label: T(loc, "dashboard.card.upcoming_events"),
			Value: strconv.Itoa(stats.UpcomingEvents),
			Hint:  T(loc, "dashboard.card.upcoming_events_hint"),
		},
		{
			Label: T(loc, "dashboard.card.messages_sent"),
			Value: strconv.Itoa(stats.RecentActivity.MessagesSent),
			Hint:  T(loc, "dashboard.card.messages_sent_hint"),
		},
	}
}

// DashboardStatCards renders the four dashboard stat tiles.
func DashboardStatCards(stats statsdomain.DashboardStats, loc Localizer) templ.Component {
	cards := DashboardStatCardData(stats, loc)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="stat-cards" data-testid="dashboard-stats">`)
		for _, card := range cards {
			b.WriteString(`<article class="stat-card">`)
			b.WriteString(`<h3 class="stat-label">` + templ.EscapeString(card.Label) + `</h3>`)
			b.WriteString(`<p class="stat-value">` + templ.EscapeString(card.Value) + `</p>`)
			b.WriteString(`<p class="stat-hint">` + templ.EscapeString(card.Hint) + `</p>`)
			b.WriteString(`</article>`)
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// DashboardPage renders the dashboard page fragment.
func DashboardPage(stats statsdomain.DashboardStats, loc Localizer) templ.Component {
	cards := DashboardStatCards(stats, loc)
	heading := T(loc, "dashboard.title")
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="dashboard" data-testid="dashboard-root"><h2>`+templ.EscapeString(heading)+`</h2>`); err != nil {
			return err
		}
		if err := cards.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

package seed

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
)

// seedDashboardDemo opens a temp target pinned to base and runs the
// dashboard-demo scenario against it.
func seedDashboardDemo(t *testing.T, base time.Time) *Target {
	t.Helper()

	target, err := OpenTarget(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("OpenTarget() error = %v", err)
	}
	t.Cleanup(func() {
		if err := target.Close(); err != nil {
			t.Errorf("close target: %v", err)
		}
	})

	target.Clock.Set(base)
	if err := RunScenario(t.Context(), target, ScenarioDashboardDemo, io.Discard); err != nil {
		t.Fatalf("RunScenario() error = %v", err)
	}
	return target
}

func demoWantStats() statsdomain.DashboardStats {
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

func TestDashboardDemoAggregates(t *testing.T) {
	base := time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)
	target := seedDashboardDemo(t, base)

	stats := statsdomain.NewService(target.Store, func() time.Time { return base })
	got, err := stats.GetDashboardStats(t.Context(), demoOrganizerID)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}
	if want := demoWantStats(); got != want {
		t.Fatalf("GetDashboardStats() = %+v, want %+v", got, want)
	}
}

// The demo margins stay clear of every window boundary for at least half a
// day, so the numbers survive a dashboard visit later the same day.
func TestDashboardDemoAggregatesHoldHoursAfterSeeding(t *testing.T) {
	base := time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)
	target := seedDashboardDemo(t, base)

	later := base.Add(12 * time.Hour)
	stats := statsdomain.NewService(target.Store, func() time.Time { return later })
	got, err := stats.GetDashboardStats(t.Context(), demoOrganizerID)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}
	if want := demoWantStats(); got != want {
		t.Fatalf("GetDashboardStats() at base+12h = %+v, want %+v", got, want)
	}
}

func TestDashboardDemoEventLifecycles(t *testing.T) {
	base := time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)
	target := seedDashboardDemo(t, base)

	page, err := target.Events.ListEvents(t.Context(), eventsdomain.ListEventsInput{OrganizerID: demoOrganizerID})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(page.Events) != 10 {
		t.Fatalf("len(events) = %d, want 10", len(page.Events))
	}

	counts := map[eventsdomain.EventStatus]int{}
	for _, event := range page.Events {
		counts[event.Status]++
		if !event.CreatedAt.Before(event.StartsAt) {
			t.Errorf("event %q created at %v, not before start %v", event.Title, event.CreatedAt, event.StartsAt)
		}
	}
	wantCounts := map[eventsdomain.EventStatus]int{
		eventsdomain.EventStatusPublished: 4,
		eventsdomain.EventStatusCompleted: 3,
		eventsdomain.EventStatusCanceled:  1,
		eventsdomain.EventStatusDraft:     2,
	}
	for status, want := range wantCounts {
		if counts[status] != want {
			t.Errorf("%s events = %d, want %d", status, counts[status], want)
		}
	}
}

func TestDashboardDemoRestoresClock(t *testing.T) {
	base := time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)
	target := seedDashboardDemo(t, base)

	if got := target.Clock.Now(); !got.Equal(base) {
		t.Fatalf("clock after scenario = %v, want %v", got, base)
	}
}

func TestDemoGuestEmailsUniquePerEvent(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 40; i++ {
		_, email := demoGuest(2, i)
		if seen[email] {
			t.Fatalf("duplicate guest email %q", email)
		}
		if !strings.Contains(email, "@guests.example.com") {
			t.Fatalf("unexpected email domain in %q", email)
		}
		seen[email] = true
	}
}

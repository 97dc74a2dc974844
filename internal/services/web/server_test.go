package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
)

type stubStatsClient struct {
	stats      statsdomain.DashboardStats
	calls      int
	lastUserID int64
}

func (s *stubStatsClient) GetDashboardStats(_ context.Context, userID int64) (statsdomain.DashboardStats, error) {
	s.calls++
	s.lastUserID = userID
	return s.stats, nil
}

type stubEventsClient struct {
	events []eventsdomain.Event
}

func (s *stubEventsClient) ListEvents(context.Context, eventsdomain.ListEventsInput) (eventsdomain.EventPage, error) {
	return eventsdomain.EventPage{Events: s.events}, nil
}

func (s *stubEventsClient) GetEvent(_ context.Context, eventID string) (eventsdomain.Event, error) {
	for _, event := range s.events {
		if event.ID == eventID {
			return event, nil
		}
	}
	return eventsdomain.Event{}, eventsdomain.ErrNotFound
}

func (s *stubEventsClient) ListRSVPs(context.Context, eventsdomain.ListRSVPsInput) (eventsdomain.RSVPPage, error) {
	return eventsdomain.RSVPPage{}, nil
}

func (s *stubEventsClient) ListMessages(context.Context, eventsdomain.ListMessagesInput) (eventsdomain.MessagePage, error) {
	return eventsdomain.MessagePage{}, nil
}

func demoStats() statsdomain.DashboardStats {
	return statsdomain.DashboardStats{
		TotalEvents:    10,
		ActiveEvents:   4,
		TotalAttendees: 120,
		UpcomingEvents: 3,
		RecentActivity: statsdomain.RecentActivity{NewRSVPs: 5, MessagesSent: 30, EventsCreated: 2},
	}
}

func newTestHandler(t *testing.T, cfg Config) (http.Handler, *stubStatsClient) {
	t.Helper()
	stats := &stubStatsClient{stats: demoStats()}
	if cfg.StatsClient == nil {
		cfg.StatsClient = stats
	}
	if cfg.EventsClient == nil {
		cfg.EventsClient = &stubEventsClient{}
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h, stats
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected http address error")
	}
}

func TestNewServerBuildsHandler(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer srv.Close()
}

func TestNewHandlerServesDashboardForHeaderUser(t *testing.T) {
	t.Parallel()

	h, stats := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"Total Events", `<p class="stat-value">10</p>`, "4 active"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if stats.lastUserID != 42 {
		t.Fatalf("stats queried for user %d, want 42", stats.lastUserID)
	}
}

func TestNewHandlerFallsBackToDefaultUser(t *testing.T) {
	t.Parallel()

	h, stats := newTestHandler(t, Config{DefaultUserID: 42})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if stats.lastUserID != 42 {
		t.Fatalf("stats queried for user %d, want default 42", stats.lastUserID)
	}
}

func TestNewHandlerMalformedUserHeaderRendersZeroStats(t *testing.T) {
	t.Parallel()

	h, stats := newTestHandler(t, Config{DefaultUserID: 42})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "0 active") {
		t.Error("expected zero-value stat cards for malformed user header")
	}
	if stats.calls != 0 {
		t.Fatalf("stats client called %d times, want 0", stats.calls)
	}
}

func TestNewHandlerServesHealth(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestNewHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.Contains(got, "text/css") {
		t.Fatalf("content-type = %q, want text/css", got)
	}
	if rr.Body.Len() == 0 {
		t.Fatal("expected stylesheet body")
	}
}

func TestNewHandlerSetsRequestID(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatal("expected request id header")
	}
}

func TestNewHandlerServesEventsDirectory(t *testing.T) {
	t.Parallel()

	events := &stubEventsClient{events: []eventsdomain.Event{{
		ID:          "evt-1",
		OrganizerID: 42,
		Title:       "Launch Party",
		Status:      eventsdomain.EventStatusPublished,
	}}}
	h, _ := newTestHandler(t, Config{EventsClient: events, DefaultUserID: 42})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Launch Party") {
		t.Error("body missing event title")
	}
}

func TestNewHandlerServesCommunicationsPlaceholder(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/communications", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "coming soon") {
		t.Error("body missing coming-soon copy")
	}
}

func TestNewHandlerUnknownRouteRendersAppNotFound(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/definitely-missing", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `data-status="404"`) {
		t.Error("expected app-shell not-found page")
	}
}

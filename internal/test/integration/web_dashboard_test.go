//go:build integration

package integration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	eventsapp "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/app"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web"
)

// TestWebDashboardIntegration renders web pages against seeded SQLite data.
func TestWebDashboardIntegration(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "events.db")
	seedDashboardDemo(t, dbPath)

	application, err := eventsapp.Bootstrap(eventsapp.Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("bootstrap event service: %v", err)
	}
	defer func() { _ = application.Close() }()

	handler, err := web.NewHandler(web.Config{
		HTTPAddr:      "localhost:0",
		DefaultUserID: 42,
		StatsClient:   statsdomain.NewService(application.Store, nil),
		EventsClient:  application.Events,
	})
	if err != nil {
		t.Fatalf("compose web handler: %v", err)
	}

	server := httptest.NewServer(handler)
	defer server.Close()
	httpClient := &http.Client{Timeout: integrationTimeout()}

	t.Run("dashboard renders seeded stats", func(t *testing.T) {
		body := webGet(t, httpClient, server.URL+"/")

		assertHTMLContains(t, body,
			"Total Events",
			`<p class="stat-value">10</p>`,
			`<p class="stat-value">120</p>`,
			`<p class="stat-value">3</p>`,
			`<p class="stat-value">30</p>`,
		)
	})

	t.Run("dashboard honors identity header", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, server.URL+"/", nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		request.Header.Set("X-User-ID", "999999")
		response, err := httpClient.Do(request)
		if err != nil {
			t.Fatalf("get dashboard: %v", err)
		}
		defer response.Body.Close()
		raw, err := io.ReadAll(response.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}

		assertHTMLContains(t, string(raw), `<p class="stat-value">0</p>`)
	})

	t.Run("events page lists seeded events", func(t *testing.T) {
		body := webGet(t, httpClient, server.URL+"/events")

		assertHTMLContains(t, body, "Product Launch Party", "Quarterly All Hands")
	})

	t.Run("communications placeholder", func(t *testing.T) {
		body := webGet(t, httpClient, server.URL+"/communications")

		assertHTMLContains(t, body, "Communications")
	})
}

func webGet(t *testing.T, client *http.Client, url string) string {
	t.Helper()

	response, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("get %s: status %d", url, response.StatusCode)
	}
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read %s body: %v", url, err)
	}
	return string(raw)
}

func assertHTMLContains(t *testing.T, body string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

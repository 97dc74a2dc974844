package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

func mountModule(t *testing.T, deps module.Dependencies) module.Mount {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount
}

func resolveOrganizer7(*http.Request) int64 { return 7 }

func TestModuleIDReturnsEvents(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "events" {
		t.Fatalf("ID() = %q, want %q", got, "events")
	}
}

func TestMountListsOrganizerEvents(t *testing.T) {
	t.Parallel()

	client := &stubEventsClient{events: []eventsdomain.Event{launchEvent()}}
	mount := mountModule(t, module.Dependencies{Events: client, ResolveUserID: resolveOrganizer7})

	req := httptest.NewRequest(http.MethodGet, routepath.Events, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Launch Party") {
		t.Errorf("body missing event title: %q", body)
	}
	if !strings.Contains(body, `href="/events/evt-1"`) {
		t.Error("body missing event detail link")
	}
	if client.lastListInput.OrganizerID != 7 {
		t.Fatalf("listed events for organizer %d, want 7", client.lastListInput.OrganizerID)
	}
}

func TestMountListEmptyStateWhenUserUnresolved(t *testing.T) {
	t.Parallel()

	client := &stubEventsClient{events: []eventsdomain.Event{launchEvent()}}
	mount := mountModule(t, module.Dependencies{Events: client})

	req := httptest.NewRequest(http.MethodGet, routepath.EventsPrefix, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "No events yet") {
		t.Error("expected empty directory state")
	}
	if client.listCalls != 0 {
		t.Fatalf("events client called %d times for unresolved organizer, want 0", client.listCalls)
	}
}

func TestMountServesEventDetail(t *testing.T) {
	t.Parallel()

	client := &stubEventsClient{
		events: []eventsdomain.Event{launchEvent()},
	}
	mount := mountModule(t, module.Dependencies{Events: client, ResolveUserID: resolveOrganizer7})

	req := httptest.NewRequest(http.MethodGet, routepath.Event("evt-1"), nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"Launch Party", "Rooftop", `data-event-id="evt-1"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestMountDetailNotFoundRendersAppErrorPage(t *testing.T) {
	t.Parallel()

	client := &stubEventsClient{}
	mount := mountModule(t, module.Dependencies{Events: client, ResolveUserID: resolveOrganizer7})

	req := httptest.NewRequest(http.MethodGet, routepath.Event("missing"), nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `data-status="404"`) {
		t.Error("expected app-shell not-found page")
	}
}

func TestMountListHTMXReturnsFragmentWithoutDocumentWrapper(t *testing.T) {
	t.Parallel()

	client := &stubEventsClient{events: []eventsdomain.Event{launchEvent()}}
	mount := mountModule(t, module.Dependencies{Events: client, ResolveUserID: resolveOrganizer7})

	req := httptest.NewRequest(http.MethodGet, routepath.Events, nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	body := rr.Body.String()
	if !strings.Contains(body, "Launch Party") {
		t.Fatalf("body = %q, want event list fragment", body)
	}
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html") {
		t.Fatal("expected htmx fragment without document wrapper")
	}
}

func TestMountDeepEventPathRendersNotFound(t *testing.T) {
	t.Parallel()

	client := &stubEventsClient{events: []eventsdomain.Event{launchEvent()}}
	mount := mountModule(t, module.Dependencies{Events: client, ResolveUserID: resolveOrganizer7})

	req := httptest.NewRequest(http.MethodGet, routepath.Event("evt-1")+"/guests", nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

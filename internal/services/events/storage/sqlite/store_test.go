package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPutGetUpdateEvent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	record := storage.EventRecord{
		ID:          "event-1",
		OrganizerID: 42,
		Title:       "Spring Gala",
		Description: "Annual fundraiser",
		Location:    "Grand Hall",
		StartsAt:    now.Add(72 * time.Hour),
		Status:      "draft",
		Capacity:    150,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := store.PutEvent(context.Background(), record); err != nil {
		t.Fatalf("put event: %v", err)
	}
	if err := store.PutEvent(context.Background(), record); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("duplicate put err = %v, want %v", err, storage.ErrConflict)
	}

	got, err := store.GetEvent(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Title != "Spring Gala" || got.OrganizerID != 42 || got.Capacity != 150 {
		t.Fatalf("unexpected event: %+v", got)
	}
	if !got.StartsAt.Equal(now.Add(72 * time.Hour)) {
		t.Fatalf("starts at = %s, want %s", got.StartsAt, now.Add(72*time.Hour))
	}
	if !got.EndsAt.IsZero() {
		t.Fatalf("ends at = %s, want zero for open-ended event", got.EndsAt)
	}

	got.Status = "published"
	got.EndsAt = now.Add(76 * time.Hour)
	got.UpdatedAt = now.Add(time.Hour)
	if err := store.UpdateEvent(context.Background(), got); err != nil {
		t.Fatalf("update event: %v", err)
	}
	updated, err := store.GetEvent(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("get updated event: %v", err)
	}
	if updated.Status != "published" {
		t.Fatalf("status = %q, want published", updated.Status)
	}
	if !updated.EndsAt.Equal(now.Add(76 * time.Hour)) {
		t.Fatalf("ends at = %s, want %s", updated.EndsAt, now.Add(76*time.Hour))
	}

	missing := updated
	missing.ID = "event-missing"
	if err := store.UpdateEvent(context.Background(), missing); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("update missing err = %v, want %v", err, storage.ErrNotFound)
	}
	if _, err := store.GetEvent(context.Background(), "event-missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListEventsByOrganizerPaginatesNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	seedEvent(t, store, "event-1", 42, "draft", now.Add(time.Minute), now.Add(72*time.Hour))
	seedEvent(t, store, "event-2", 42, "published", now.Add(2*time.Minute), now.Add(96*time.Hour))
	seedEvent(t, store, "event-3", 42, "published", now.Add(3*time.Minute), now.Add(120*time.Hour))
	seedEvent(t, store, "event-other", 7, "published", now.Add(4*time.Minute), now.Add(24*time.Hour))

	pageOne, err := store.ListEventsByOrganizer(context.Background(), 42, storage.ListEventsQuery{PageSize: 2})
	if err != nil {
		t.Fatalf("list page one: %v", err)
	}
	if len(pageOne.Events) != 2 {
		t.Fatalf("page one events = %d, want 2", len(pageOne.Events))
	}
	if pageOne.Events[0].ID != "event-3" || pageOne.Events[1].ID != "event-2" {
		t.Fatalf("unexpected page one order: %s, %s", pageOne.Events[0].ID, pageOne.Events[1].ID)
	}
	if pageOne.NextPageToken == "" {
		t.Fatal("expected non-empty next page token")
	}

	pageTwo, err := store.ListEventsByOrganizer(context.Background(), 42, storage.ListEventsQuery{
		PageSize:  2,
		PageToken: pageOne.NextPageToken,
	})
	if err != nil {
		t.Fatalf("list page two: %v", err)
	}
	if len(pageTwo.Events) != 1 || pageTwo.Events[0].ID != "event-1" {
		t.Fatalf("unexpected page two: %+v", pageTwo.Events)
	}
	if pageTwo.NextPageToken != "" {
		t.Fatalf("expected empty token on final page, got %q", pageTwo.NextPageToken)
	}

	empty, err := store.ListEventsByOrganizer(context.Background(), 42, storage.ListEventsQuery{
		PageSize:  2,
		PageToken: "unknown-token",
	})
	if err != nil {
		t.Fatalf("list with unknown token: %v", err)
	}
	if len(empty.Events) != 0 {
		t.Fatalf("expected empty page for unknown token, got %d events", len(empty.Events))
	}
}

func TestListEventsByOrganizerFilters(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	seedEvent(t, store, "event-1", 42, "draft", now.Add(time.Minute), now.Add(72*time.Hour))
	seedEvent(t, store, "event-2", 42, "published", now.Add(2*time.Minute), now.Add(96*time.Hour))
	seedEvent(t, store, "event-3", 42, "published", now.Add(3*time.Minute), now.Add(480*time.Hour))

	published, err := store.ListEventsByOrganizer(context.Background(), 42, storage.ListEventsQuery{
		Filter:   `status = "published"`,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(published.Events) != 2 {
		t.Fatalf("published events = %d, want 2", len(published.Events))
	}

	cutoff := now.Add(200 * time.Hour).Format(time.RFC3339)
	late, err := store.ListEventsByOrganizer(context.Background(), 42, storage.ListEventsQuery{
		Filter:   `status = "published" AND starts_at >= timestamp("` + cutoff + `")`,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("list late events: %v", err)
	}
	if len(late.Events) != 1 || late.Events[0].ID != "event-3" {
		t.Fatalf("unexpected filtered events: %+v", late.Events)
	}

	if _, err := store.ListEventsByOrganizer(context.Background(), 42, storage.ListEventsQuery{
		Filter:   `bogus = "field"`,
		PageSize: 10,
	}); !errors.Is(err, storage.ErrInvalidFilter) {
		t.Fatalf("invalid filter err = %v, want %v", err, storage.ErrInvalidFilter)
	}
}

func TestRSVPLifecycle(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedEvent(t, store, "event-1", 42, "published", now, now.Add(72*time.Hour))

	record := storage.RSVPRecord{
		ID:         "rsvp-1",
		EventID:    "event-1",
		GuestName:  "Ada Lovelace",
		GuestEmail: "Ada@Example.com",
		Status:     "attending",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.PutRSVP(context.Background(), record); err != nil {
		t.Fatalf("put rsvp: %v", err)
	}

	// Same event and email from another writer collides on the unique index.
	duplicate := record
	duplicate.ID = "rsvp-dup"
	if err := store.PutRSVP(context.Background(), duplicate); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("duplicate rsvp err = %v, want %v", err, storage.ErrConflict)
	}

	// Guest emails are stored lowercased, so lookups are case-insensitive.
	got, err := store.GetRSVPByEventAndEmail(context.Background(), "event-1", "ADA@example.COM")
	if err != nil {
		t.Fatalf("get rsvp by email: %v", err)
	}
	if got.ID != "rsvp-1" || got.GuestEmail != "ada@example.com" {
		t.Fatalf("unexpected rsvp: %+v", got)
	}

	attending, err := store.CountAttendingRSVPs(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("count attending: %v", err)
	}
	if attending != 1 {
		t.Fatalf("attending = %d, want 1", attending)
	}

	got.Status = "maybe"
	got.UpdatedAt = now.Add(time.Hour)
	if err := store.UpdateRSVP(context.Background(), got); err != nil {
		t.Fatalf("update rsvp: %v", err)
	}
	attending, err = store.CountAttendingRSVPs(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("count attending after update: %v", err)
	}
	if attending != 0 {
		t.Fatalf("attending = %d, want 0 after status change", attending)
	}

	orphan := record
	orphan.ID = "rsvp-orphan"
	orphan.EventID = "event-missing"
	orphan.GuestEmail = "orphan@example.com"
	if err := store.PutRSVP(context.Background(), orphan); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("orphan rsvp err = %v, want %v", err, storage.ErrConflict)
	}
}

func TestListRSVPsByEventPaginatesNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedEvent(t, store, "event-1", 42, "published", now, now.Add(72*time.Hour))

	for i, guest := range []string{"ada", "grace", "edsger"} {
		record := storage.RSVPRecord{
			ID:         "rsvp-" + guest,
			EventID:    "event-1",
			GuestName:  guest,
			GuestEmail: guest + "@example.com",
			Status:     "attending",
			CreatedAt:  now.Add(time.Duration(i+1) * time.Minute),
			UpdatedAt:  now.Add(time.Duration(i+1) * time.Minute),
		}
		if err := store.PutRSVP(context.Background(), record); err != nil {
			t.Fatalf("put rsvp %s: %v", guest, err)
		}
	}

	pageOne, err := store.ListRSVPsByEvent(context.Background(), "event-1", 2, "")
	if err != nil {
		t.Fatalf("list page one: %v", err)
	}
	if len(pageOne.RSVPs) != 2 {
		t.Fatalf("page one rsvps = %d, want 2", len(pageOne.RSVPs))
	}
	if pageOne.RSVPs[0].ID != "rsvp-edsger" || pageOne.RSVPs[1].ID != "rsvp-grace" {
		t.Fatalf("unexpected order: %s, %s", pageOne.RSVPs[0].ID, pageOne.RSVPs[1].ID)
	}

	pageTwo, err := store.ListRSVPsByEvent(context.Background(), "event-1", 2, pageOne.NextPageToken)
	if err != nil {
		t.Fatalf("list page two: %v", err)
	}
	if len(pageTwo.RSVPs) != 1 || pageTwo.RSVPs[0].ID != "rsvp-ada" {
		t.Fatalf("unexpected page two: %+v", pageTwo.RSVPs)
	}
}

func TestMessagesRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedEvent(t, store, "event-1", 42, "published", now, now.Add(72*time.Hour))

	for i, subject := range []string{"first", "second"} {
		record := storage.MessageRecord{
			ID:             "msg-" + subject,
			EventID:        "event-1",
			SenderID:       42,
			Subject:        subject,
			Body:           "body",
			RecipientCount: 5,
			CreatedAt:      now.Add(time.Duration(i+1) * time.Minute),
		}
		if err := store.PutMessage(context.Background(), record); err != nil {
			t.Fatalf("put message %s: %v", subject, err)
		}
	}

	page, err := store.ListMessagesByEvent(context.Background(), "event-1", 10, "")
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(page.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(page.Messages))
	}
	if page.Messages[0].Subject != "second" || page.Messages[1].Subject != "first" {
		t.Fatalf("unexpected order: %s, %s", page.Messages[0].Subject, page.Messages[1].Subject)
	}
	if page.Messages[0].RecipientCount != 5 {
		t.Fatalf("recipient count = %d, want 5", page.Messages[0].RecipientCount)
	}

	orphan := storage.MessageRecord{
		ID:        "msg-orphan",
		EventID:   "event-missing",
		SenderID:  42,
		Subject:   "subject",
		Body:      "body",
		CreatedAt: now,
	}
	if err := store.PutMessage(context.Background(), orphan); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("orphan message err = %v, want %v", err, storage.ErrConflict)
	}
}

func TestStatsCounts(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// Organizer 42: one active published event, one published event already
	// over, one draft, plus an unrelated organizer's event.
	putEvent(t, store, storage.EventRecord{
		ID: "event-active", OrganizerID: 42, Title: "Active", Status: "published",
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour),
		CreatedAt: now.Add(-40 * 24 * time.Hour), UpdatedAt: now.Add(-40 * 24 * time.Hour),
	})
	putEvent(t, store, storage.EventRecord{
		ID: "event-upcoming", OrganizerID: 42, Title: "Upcoming", Status: "published",
		StartsAt: now.Add(10 * 24 * time.Hour),
		CreatedAt: now.Add(-2 * 24 * time.Hour), UpdatedAt: now.Add(-2 * 24 * time.Hour),
	})
	putEvent(t, store, storage.EventRecord{
		ID: "event-over", OrganizerID: 42, Title: "Over", Status: "published",
		StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-24 * time.Hour),
		CreatedAt: now.Add(-10 * 24 * time.Hour), UpdatedAt: now.Add(-10 * 24 * time.Hour),
	})
	putEvent(t, store, storage.EventRecord{
		ID: "event-draft", OrganizerID: 42, Title: "Draft", Status: "draft",
		StartsAt: now.Add(5 * 24 * time.Hour),
		CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
	})
	putEvent(t, store, storage.EventRecord{
		ID: "event-foreign", OrganizerID: 7, Title: "Foreign", Status: "published",
		StartsAt: now.Add(24 * time.Hour),
		CreatedAt: now, UpdatedAt: now,
	})

	for _, rsvp := range []storage.RSVPRecord{
		{ID: "rsvp-1", EventID: "event-active", GuestName: "Ada", GuestEmail: "ada@example.com", Status: "attending", CreatedAt: now.Add(-10 * 24 * time.Hour), UpdatedAt: now.Add(-10 * 24 * time.Hour)},
		{ID: "rsvp-2", EventID: "event-active", GuestName: "Grace", GuestEmail: "grace@example.com", Status: "attending", CreatedAt: now.Add(-2 * 24 * time.Hour), UpdatedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: "rsvp-3", EventID: "event-upcoming", GuestName: "Edsger", GuestEmail: "edsger@example.com", Status: "maybe", CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour)},
		{ID: "rsvp-foreign", EventID: "event-foreign", GuestName: "Alan", GuestEmail: "alan@example.com", Status: "attending", CreatedAt: now, UpdatedAt: now},
	} {
		if err := store.PutRSVP(context.Background(), rsvp); err != nil {
			t.Fatalf("put rsvp %s: %v", rsvp.ID, err)
		}
	}

	for _, message := range []storage.MessageRecord{
		{ID: "msg-old", EventID: "event-active", SenderID: 42, Subject: "Old", Body: "body", CreatedAt: now.Add(-45 * 24 * time.Hour)},
		{ID: "msg-new", EventID: "event-active", SenderID: 42, Subject: "New", Body: "body", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "msg-foreign", EventID: "event-foreign", SenderID: 7, Subject: "Foreign", Body: "body", CreatedAt: now},
	} {
		if err := store.PutMessage(context.Background(), message); err != nil {
			t.Fatalf("put message %s: %v", message.ID, err)
		}
	}

	assertCount := func(name string, got int, err error, want int) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Fatalf("%s = %d, want %d", name, got, want)
		}
	}

	total, err := store.CountEventsByOrganizer(context.Background(), 42)
	assertCount("total events", total, err, 4)

	active, err := store.CountActiveEventsByOrganizer(context.Background(), 42, now)
	assertCount("active events", active, err, 2)

	upcoming, err := store.CountUpcomingEventsByOrganizer(context.Background(), 42, now, now.Add(30*24*time.Hour))
	assertCount("upcoming events", upcoming, err, 1)

	attendees, err := store.CountAttendingRSVPsByOrganizer(context.Background(), 42)
	assertCount("total attendees", attendees, err, 2)

	recentRSVPs, err := store.CountRSVPsByOrganizerSince(context.Background(), 42, now.Add(-7*24*time.Hour))
	assertCount("recent rsvps", recentRSVPs, err, 2)

	messages, err := store.CountMessagesBySenderSince(context.Background(), 42, now.Add(-30*24*time.Hour))
	assertCount("recent messages", messages, err, 1)

	created, err := store.CountEventsCreatedByOrganizerSince(context.Background(), 42, now.Add(-30*24*time.Hour))
	assertCount("events created", created, err, 3)
}

func TestStatusLabels(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	empty, err := store.StatusLabels(context.Background())
	if err != nil {
		t.Fatalf("status labels: %v", err)
	}
	if len(empty.Events) != 0 || len(empty.RSVPs) != 0 {
		t.Fatalf("expected no labels in an empty store, got %+v", empty)
	}

	seedEvent(t, store, "event-1", 42, "published", now, now.Add(24*time.Hour))
	seedEvent(t, store, "event-2", 42, "published", now, now.Add(48*time.Hour))
	seedEvent(t, store, "event-3", 42, "draft", now, now.Add(72*time.Hour))

	for _, rsvp := range []storage.RSVPRecord{
		{ID: "rsvp-1", EventID: "event-1", GuestName: "Ada", GuestEmail: "ada@example.com", Status: "attending", CreatedAt: now, UpdatedAt: now},
		{ID: "rsvp-2", EventID: "event-1", GuestName: "Grace", GuestEmail: "grace@example.com", Status: "maybe", CreatedAt: now, UpdatedAt: now},
	} {
		if err := store.PutRSVP(context.Background(), rsvp); err != nil {
			t.Fatalf("put rsvp %s: %v", rsvp.ID, err)
		}
	}

	labels, err := store.StatusLabels(context.Background())
	if err != nil {
		t.Fatalf("status labels: %v", err)
	}
	if want := map[string]int{"published": 2, "draft": 1}; !reflect.DeepEqual(labels.Events, want) {
		t.Fatalf("event labels = %v, want %v", labels.Events, want)
	}
	if want := map[string]int{"attending": 1, "maybe": 1}; !reflect.DeepEqual(labels.RSVPs, want) {
		t.Fatalf("rsvp labels = %v, want %v", labels.RSVPs, want)
	}
}

func seedEvent(t *testing.T, store *Store, id string, organizerID int64, status string, createdAt time.Time, startsAt time.Time) {
	t.Helper()
	putEvent(t, store, storage.EventRecord{
		ID:          id,
		OrganizerID: organizerID,
		Title:       "Event " + id,
		Status:      status,
		StartsAt:    startsAt,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
}

func putEvent(t *testing.T, store *Store, record storage.EventRecord) {
	t.Helper()
	if err := store.PutEvent(context.Background(), record); err != nil {
		t.Fatalf("put event %s: %v", record.ID, err)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "events.db")
	store, err := Open(storePath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Fatalf("close store: %v", closeErr)
		}
	})
	return store
}

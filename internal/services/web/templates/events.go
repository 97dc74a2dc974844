package templates

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/routepath"
)

const eventTimeLayout = "Jan 2, 2006 15:04 MST"

// EventStatusLabel returns the localized display label for an event status.
func EventStatusLabel(status eventsdomain.EventStatus, loc Localizer) string {
	switch status {
	case eventsdomain.EventStatusDraft:
		return T(loc, "events.status.draft")
	case eventsdomain.EventStatusPublished:
		return T(loc, "events.status.published")
	case eventsdomain.EventStatusCanceled:
		return T(loc, "events.status.canceled")
	case eventsdomain.EventStatusCompleted:
		return T(loc, "events.status.completed")
	default:
		return string(status)
	}
}

// RSVPStatusLabel returns the localized display label for an RSVP status.
func RSVPStatusLabel(status eventsdomain.RSVPStatus, loc Localizer) string {
	switch status {
	case eventsdomain.RSVPStatusAttending:
		return T(loc, "events.rsvp.attending")
	case eventsdomain.RSVPStatusNotAttending:
		return T(loc, "events.rsvp.not_attending")
	case eventsdomain.RSVPStatusMaybe:
		return T(loc, "events.rsvp.maybe")
	default:
		return string(status)
	}
}

// EventListPage renders the organizer event list fragment.
func EventListPage(events []eventsdomain.Event, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="events" data-testid="events-root"><h2>` + templ.EscapeString(T(loc, "events.title")) + `</h2>`)
		if len(events) == 0 {
			b.WriteString(`<p class="empty-state">` + templ.EscapeString(T(loc, "events.empty")) + `</p>`)
		} else {
			b.WriteString(`<ul class="event-list">`)
			for _, event := range events {
				b.WriteString(`<li class="event-item">`)
				b.WriteString(`<a href="` + routepath.Event(event.ID) + `">` + templ.EscapeString(event.Title) + `</a>`)
				b.WriteString(statusBadge(event.Status, loc))
				b.WriteString(`<span class="event-starts">` + templ.EscapeString(formatEventTime(event.StartsAt)) + `</span>`)
				if location := strings.TrimSpace(event.Location); location != "" {
					b.WriteString(`<span class="event-location">` + templ.EscapeString(location) + `</span>`)
				}
				b.WriteString(`</li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// EventDetailPage renders one event with its guest list and message history.
func EventDetailPage(event eventsdomain.Event, rsvps []eventsdomain.RSVP, messages []eventsdomain.Message, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="event-detail" data-event-id="` + templ.EscapeString(event.ID) + `">`)
		b.WriteString(`<h2>` + templ.EscapeString(event.Title) + `</h2>`)
		b.WriteString(statusBadge(event.Status, loc))
		if description := strings.TrimSpace(event.Description); description != "" {
			b.WriteString(`<p class="event-description">` + templ.EscapeString(description) + `</p>`)
		}

		b.WriteString(`<dl class="event-facts">`)
		writeFact(&b, T(loc, "events.detail.starts"), formatEventTime(event.StartsAt))
		if !event.EndsAt.IsZero() {
			writeFact(&b, T(loc, "events.detail.ends"), formatEventTime(event.EndsAt))
		}
		if location := strings.TrimSpace(event.Location); location != "" {
			writeFact(&b, T(loc, "events.detail.location"), location)
		}
		capacity := T(loc, "events.detail.capacity_unlimited")
		if event.Capacity > 0 {
			capacity = strconv.Itoa(event.Capacity)
		}
		writeFact(&b, T(loc, "events.detail.capacity"), capacity)
		b.WriteString(`</dl>`)

		b.WriteString(`<section class="event-guests"><h3>` + templ.EscapeString(T(loc, "events.detail.guests")) + `</h3>`)
		if len(rsvps) == 0 {
			b.WriteString(`<p class="empty-state">` + templ.EscapeString(T(loc, "events.detail.guests_empty")) + `</p>`)
		} else {
			b.WriteString(`<ul class="guest-list">`)
			for _, rsvp := range rsvps {
				b.WriteString(`<li><span class="guest-name">` + templ.EscapeString(rsvp.GuestName) + `</span>`)
				b.WriteString(`<span class="guest-status">` + templ.EscapeString(RSVPStatusLabel(rsvp.Status, loc)) + `</span></li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</section>`)

		b.WriteString(`<section class="event-messages"><h3>` + templ.EscapeString(T(loc, "events.detail.messages")) + `</h3>`)
		if len(messages) == 0 {
			b.WriteString(`<p class="empty-state">` + templ.EscapeString(T(loc, "events.detail.messages_empty")) + `</p>`)
		} else {
			b.WriteString(`<ul class="message-list">`)
			for _, msg := range messages {
				b.WriteString(`<li><span class="message-subject">` + templ.EscapeString(msg.Subject) + `</span>`)
				b.WriteString(`<span class="message-recipients">` + templ.EscapeString(T(loc, "events.detail.recipients", msg.RecipientCount)) + `</span></li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</section>`)

		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func statusBadge(status eventsdomain.EventStatus, loc Localizer) string {
	return `<span class="event-status event-status-` + templ.EscapeString(string(status)) + `">` +
		templ.EscapeString(EventStatusLabel(status, loc)) + `</span>`
}

func writeFact(b *strings.Builder, label string, value string) {
	b.WriteString(`<dt>` + templ.EscapeString(label) + `</dt><dd>` + templ.EscapeString(value) + `</dd>`)
}

func formatEventTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(eventTimeLayout)
}

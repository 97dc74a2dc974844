package seed

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
)

// demoOrganizerID is the organizer the dashboard demo dataset belongs to.
const demoOrganizerID int64 = 42

const day = 24 * time.Hour

// demoEvent describes one event of the dashboard demo dataset. Offsets are
// relative to the seeding instant; negative offsets reach into the past.
type demoEvent struct {
	title       string
	description string
	location    string
	createdAt   time.Duration
	startsAt    time.Duration
	length      time.Duration
	capacity    int
	// status is the terminal status after seeding. Non-draft events are
	// published one hour after creation.
	status eventsdomain.EventStatus
	// canceledAt applies when status is canceled.
	canceledAt time.Duration
	rsvps      []demoRSVPBatch
	messages   []demoMessageBatch
}

// demoRSVPBatch submits count guest responses starting at the given offset,
// stepped 90 seconds apart.
type demoRSVPBatch struct {
	offset time.Duration
	count  int
	status eventsdomain.RSVPStatus
}

// demoMessageBatch sends count broadcasts starting at the given offset,
// stepped three hours apart. An empty subject draws from the rotation pool.
type demoMessageBatch struct {
	offset  time.Duration
	count   int
	subject string
	body    string
}

// runDashboardDemo seeds the fixed dataset behind the dashboard demo for
// organizer 42: ten events of which four are active and three upcoming, 120
// attending guests, five guest responses inside the seven-day window, thirty
// broadcasts inside the thirty-day window and two events created inside it.
func runDashboardDemo(ctx context.Context, target *Target, progress io.Writer) error {
	base := target.Clock.Now()
	defer target.Clock.Set(base)

	for i, spec := range dashboardDemoEvents() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := seedDemoEvent(ctx, target, base, i, spec); err != nil {
			return fmt.Errorf("seed event %q: %w", spec.title, err)
		}
		fmt.Fprintf(progress, "  Seeded event %q (%s)\n", spec.title, spec.status)
	}

	fmt.Fprintf(progress, "Dashboard demo ready for organizer %d\n", demoOrganizerID)
	return nil
}

// dashboardDemoEvents lays out the demo timeline. The split the dashboard
// cards report depends on where each row lands relative to the aggregation
// windows, so offsets here keep a comfortable margin from every boundary.
func dashboardDemoEvents() []demoEvent {
	return []demoEvent{
		{
			title:       "Product Launch Party",
			description: "Celebrate the spring release with the whole community.",
			location:    "Harbor View Loft",
			createdAt:   -3 * day,
			startsAt:    5 * day,
			length:      4 * time.Hour,
			capacity:    150,
			status:      eventsdomain.EventStatusPublished,
			rsvps: []demoRSVPBatch{
				{offset: -2 * day, count: 2, status: eventsdomain.RSVPStatusAttending},
				{offset: -1 * day, count: 1, status: eventsdomain.RSVPStatusMaybe},
			},
			messages: []demoMessageBatch{
				{offset: -(2*day + 12*time.Hour), count: 3},
				{offset: -(1*day - 2*time.Hour), count: 3},
			},
		},
		{
			title:       "Quarterly All Hands",
			description: "Company update, roadmap review and open Q&A.",
			location:    "Main Auditorium",
			createdAt:   -10 * day,
			startsAt:    12 * day,
			length:      3 * time.Hour,
			capacity:    300,
			status:      eventsdomain.EventStatusPublished,
			rsvps: []demoRSVPBatch{
				{offset: -9 * day, count: 20, status: eventsdomain.RSVPStatusAttending},
				{offset: -6 * day, count: 1, status: eventsdomain.RSVPStatusNotAttending},
				{offset: -5 * day, count: 1, status: eventsdomain.RSVPStatusAttending},
			},
			messages: []demoMessageBatch{
				{offset: -9 * day, count: 5},
				{offset: -4 * day, count: 5},
			},
		},
		{
			title:       "Customer Roundtable",
			description: "Small-group feedback session with product leads.",
			location:    "Innovation Lab",
			createdAt:   -55 * day,
			startsAt:    21 * day,
			length:      6 * time.Hour,
			capacity:    80,
			status:      eventsdomain.EventStatusPublished,
			rsvps: []demoRSVPBatch{
				{offset: -50 * day, count: 25, status: eventsdomain.RSVPStatusAttending},
				{offset: -49 * day, count: 3, status: eventsdomain.RSVPStatusMaybe},
				{offset: -48 * day, count: 2, status: eventsdomain.RSVPStatusNotAttending},
			},
			messages: []demoMessageBatch{
				{offset: -28 * day, count: 3},
				{offset: -14 * day, count: 3},
			},
		},
		{
			title:       "Annual Member Gala",
			description: "Formal dinner honoring this year's community awards.",
			location:    "Grand Ballroom",
			createdAt:   -40 * day,
			startsAt:    45 * day,
			length:      5 * time.Hour,
			capacity:    200,
			status:      eventsdomain.EventStatusPublished,
			rsvps: []demoRSVPBatch{
				{offset: -35 * day, count: 12, status: eventsdomain.RSVPStatusAttending},
			},
			messages: []demoMessageBatch{
				{offset: -25 * day, count: 5},
			},
		},
		{
			title:       "Onboarding Workshop",
			description: "Hands-on walkthrough for newly joined members.",
			location:    "Training Room B",
			createdAt:   -35 * day,
			startsAt:    -20 * day,
			length:      4 * time.Hour,
			capacity:    40,
			status:      eventsdomain.EventStatusCompleted,
			rsvps: []demoRSVPBatch{
				{offset: -33 * day, count: 24, status: eventsdomain.RSVPStatusAttending},
				{offset: -32 * day, count: 2, status: eventsdomain.RSVPStatusMaybe},
			},
			messages: []demoMessageBatch{
				{offset: -19 * day, count: 1, subject: "Workshop recording and slides", body: "Thanks for attending. The recording and slide deck are now available on the member portal."},
				{offset: -18 * day, count: 1},
			},
		},
		{
			title:       "Community Meetup",
			description: "Monthly social with lightning talks by members.",
			location:    "Riverside Pavilion",
			createdAt:   -50 * day,
			startsAt:    -40 * day,
			length:      5 * time.Hour,
			capacity:    60,
			status:      eventsdomain.EventStatusCompleted,
			rsvps: []demoRSVPBatch{
				{offset: -46 * day, count: 21, status: eventsdomain.RSVPStatusAttending},
				{offset: -45 * day, count: 1, status: eventsdomain.RSVPStatusNotAttending},
			},
			messages: []demoMessageBatch{
				{offset: -39 * day, count: 2},
			},
		},
		{
			title:       "Beta Kickoff",
			description: "First look at the beta program for early adopters.",
			location:    "Demo Theater",
			createdAt:   -90 * day,
			startsAt:    -75 * day,
			length:      2 * time.Hour,
			status:      eventsdomain.EventStatusCompleted,
			rsvps: []demoRSVPBatch{
				{offset: -80 * day, count: 15, status: eventsdomain.RSVPStatusAttending},
			},
			messages: []demoMessageBatch{
				{offset: -74 * day, count: 2},
			},
		},
		{
			title:       "Rooftop Mixer",
			description: "Casual evening networking over drinks.",
			location:    "Sky Terrace",
			createdAt:   -45 * day,
			startsAt:    9 * day,
			length:      4 * time.Hour,
			capacity:    50,
			status:      eventsdomain.EventStatusCanceled,
			canceledAt:  -12 * day,
			rsvps: []demoRSVPBatch{
				{offset: -44 * day, count: 3, status: eventsdomain.RSVPStatusMaybe},
			},
			messages: []demoMessageBatch{
				{offset: -12*day + 30*time.Minute, count: 1, subject: "Rooftop Mixer canceled", body: "The venue fell through, so we are canceling this one. Watch for a replacement date next month."},
			},
		},
		{
			title:       "Internal Hack Day",
			description: "One-day build sprint, demos at five.",
			location:    "Engineering Wing",
			createdAt:   -60 * day,
			startsAt:    18 * day,
			length:      8 * time.Hour,
			status:      eventsdomain.EventStatusDraft,
		},
		{
			title:       "Winter Retreat Planning",
			description: "Two-day offsite to plan next year's program.",
			location:    "Offsite Lodge",
			createdAt:   -70 * day,
			startsAt:    60 * day,
			length:      48 * time.Hour,
			capacity:    30,
			status:      eventsdomain.EventStatusDraft,
		},
	}
}

// seedDemoEvent writes one demo event with its responses and broadcasts,
// moving the clock so every row lands on its planned instant.
func seedDemoEvent(ctx context.Context, target *Target, base time.Time, index int, spec demoEvent) error {
	target.Clock.Set(base.Add(spec.createdAt))
	input := eventsdomain.CreateEventInput{
		OrganizerID: demoOrganizerID,
		Title:       spec.title,
		Description: spec.description,
		Location:    spec.location,
		StartsAt:    base.Add(spec.startsAt),
		Capacity:    spec.capacity,
	}
	if spec.length > 0 {
		input.EndsAt = base.Add(spec.startsAt + spec.length)
	}
	event, err := target.Events.CreateEvent(ctx, input)
	if err != nil {
		return err
	}

	if spec.status == eventsdomain.EventStatusDraft {
		return nil
	}

	target.Clock.Set(base.Add(spec.createdAt + time.Hour))
	if _, err := target.Events.PublishEvent(ctx, demoOrganizerID, event.ID); err != nil {
		return err
	}

	guestIndex := 0
	for _, batch := range spec.rsvps {
		for j := 0; j < batch.count; j++ {
			target.Clock.Set(base.Add(batch.offset + time.Duration(j)*90*time.Second))
			name, email := demoGuest(index, guestIndex)
			guestIndex++
			if _, err := target.Events.SubmitRSVP(ctx, eventsdomain.SubmitRSVPInput{
				EventID:    event.ID,
				GuestName:  name,
				GuestEmail: email,
				Status:     batch.status,
			}); err != nil {
				return err
			}
		}
	}

	switch spec.status {
	case eventsdomain.EventStatusCompleted:
		target.Clock.Set(base.Add(spec.startsAt + spec.length + 2*time.Hour))
		if _, err := target.Events.CompleteEvent(ctx, demoOrganizerID, event.ID); err != nil {
			return err
		}
	case eventsdomain.EventStatusCanceled:
		target.Clock.Set(base.Add(spec.canceledAt))
		if _, err := target.Events.CancelEvent(ctx, demoOrganizerID, event.ID); err != nil {
			return err
		}
	}

	messageIndex := 0
	for _, batch := range spec.messages {
		for j := 0; j < batch.count; j++ {
			target.Clock.Set(base.Add(batch.offset + time.Duration(j)*3*time.Hour))
			subject, body := demoBroadcast(index+messageIndex, batch)
			messageIndex++
			if _, err := target.Events.SendMessage(ctx, eventsdomain.SendMessageInput{
				EventID:  event.ID,
				SenderID: demoOrganizerID,
				Subject:  subject,
				Body:     body,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

var demoFirstNames = []string{
	"Sarah", "Alex", "Yuki", "Priya", "Amara", "Diego",
	"Layla", "Kofi", "Morgan", "Mei", "Ravi", "Sofia",
	"Kenji", "Zara", "Jordan", "Aisha", "Marcus", "Elena",
	"Tariq", "Nia", "Mateo", "Hana", "Omar", "Lucia",
}

var demoLastNames = []string{
	"Reyes", "Chen", "Okafor", "Tanaka", "Novak", "Silva",
	"Haddad", "Mensah", "Kowalski", "Nguyen", "Moreau", "Patel",
	"Larsen", "Vargas", "Ivanova", "Kim", "Diallo", "Rossi",
	"Yamada", "Castillo",
}

// demoGuest derives a stable guest identity. The numeric suffix keeps emails
// unique within an event even when the name pools wrap around.
func demoGuest(eventIndex, guestIndex int) (name, email string) {
	first := demoFirstNames[(eventIndex*5+guestIndex)%len(demoFirstNames)]
	last := demoLastNames[(eventIndex*3+guestIndex)%len(demoLastNames)]
	name = first + " " + last
	email = fmt.Sprintf("%s.%s.%d@guests.example.com", strings.ToLower(first), strings.ToLower(last), guestIndex+1)
	return name, email
}

var demoSubjects = []string{
	"Venue and parking details",
	"Schedule update",
	"Reminder: RSVP closes soon",
	"Speaker lineup announced",
	"What to bring",
	"Agenda inside",
	"Seating and accessibility notes",
	"Catering preview",
}

var demoBodies = []string{
	"Quick update from the organizing team. Full details are on the event page.",
	"We have updated the event page with the latest information. See you there.",
	"A short reminder before the event. Reply to this message with any questions.",
	"Here is what changed since the last update. Check the event page for the rest.",
}

// demoBroadcast picks a subject and body for one broadcast, honoring the
// batch override when present.
func demoBroadcast(rotation int, batch demoMessageBatch) (subject, body string) {
	if batch.subject != "" {
		return batch.subject, batch.body
	}
	return demoSubjects[rotation%len(demoSubjects)], demoBodies[rotation%len(demoBodies)]
}

package generator

import (
	"context"
	"fmt"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
)

// fakeWriter records domain writes and hands back synthetic records so
// generator tests run without sqlite.
type fakeWriter struct {
	nextID    int
	created   []eventsdomain.Event
	published []string
	completed []string
	canceled  []string
	rsvps     []eventsdomain.SubmitRSVPInput
	messages  []eventsdomain.SendMessageInput
	createErr error
}

func (f *fakeWriter) CreateEvent(_ context.Context, input eventsdomain.CreateEventInput) (eventsdomain.Event, error) {
	if f.createErr != nil {
		return eventsdomain.Event{}, f.createErr
	}
	f.nextID++
	event := eventsdomain.Event{
		ID:          fmt.Sprintf("evt-%d", f.nextID),
		OrganizerID: input.OrganizerID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Status:      eventsdomain.EventStatusDraft,
		Capacity:    input.Capacity,
	}
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeWriter) PublishEvent(_ context.Context, _ int64, eventID string) (eventsdomain.Event, error) {
	f.published = append(f.published, eventID)
	return eventsdomain.Event{ID: eventID, Status: eventsdomain.EventStatusPublished}, nil
}

func (f *fakeWriter) CompleteEvent(_ context.Context, _ int64, eventID string) (eventsdomain.Event, error) {
	f.completed = append(f.completed, eventID)
	return eventsdomain.Event{ID: eventID, Status: eventsdomain.EventStatusCompleted}, nil
}

func (f *fakeWriter) CancelEvent(_ context.Context, _ int64, eventID string) (eventsdomain.Event, error) {
	f.canceled = append(f.canceled, eventID)
	return eventsdomain.Event{ID: eventID, Status: eventsdomain.EventStatusCanceled}, nil
}

func (f *fakeWriter) SubmitRSVP(_ context.Context, input eventsdomain.SubmitRSVPInput) (eventsdomain.RSVP, error) {
	f.rsvps = append(f.rsvps, input)
	return eventsdomain.RSVP{EventID: input.EventID, GuestEmail: input.GuestEmail, Status: input.Status}, nil
}

func (f *fakeWriter) SendMessage(_ context.Context, input eventsdomain.SendMessageInput) (eventsdomain.Message, error) {
	f.messages = append(f.messages, input)
	return eventsdomain.Message{EventID: input.EventID, SenderID: input.SenderID}, nil
}

// rsvpsByEvent groups recorded responses by event id.
func (f *fakeWriter) rsvpsByEvent() map[string]int {
	counts := make(map[string]int)
	for _, rsvp := range f.rsvps {
		counts[rsvp.EventID]++
	}
	return counts
}

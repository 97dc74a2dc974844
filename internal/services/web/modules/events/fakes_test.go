package events

import (
	"context"
	"time"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
)

type stubEventsClient struct {
	events   []eventsdomain.Event
	rsvps    []eventsdomain.RSVP
	messages []eventsdomain.Message

	listErr error
	getErr  error

	listCalls     int
	lastListInput eventsdomain.ListEventsInput
}

func (s *stubEventsClient) ListEvents(_ context.Context, input eventsdomain.ListEventsInput) (eventsdomain.EventPage, error) {
	s.listCalls++
	s.lastListInput = input
	if s.listErr != nil {
		return eventsdomain.EventPage{}, s.listErr
	}
	return eventsdomain.EventPage{Events: s.events}, nil
}

func (s *stubEventsClient) GetEvent(_ context.Context, eventID string) (eventsdomain.Event, error) {
	if s.getErr != nil {
		return eventsdomain.Event{}, s.getErr
	}
	for _, event := range s.events {
		if event.ID == eventID {
			return event, nil
		}
	}
	return eventsdomain.Event{}, eventsdomain.ErrNotFound
}

func (s *stubEventsClient) ListRSVPs(_ context.Context, input eventsdomain.ListRSVPsInput) (eventsdomain.RSVPPage, error) {
	return eventsdomain.RSVPPage{RSVPs: s.rsvps}, nil
}

func (s *stubEventsClient) ListMessages(_ context.Context, input eventsdomain.ListMessagesInput) (eventsdomain.MessagePage, error) {
	return eventsdomain.MessagePage{Messages: s.messages}, nil
}

func launchEvent() eventsdomain.Event {
	return eventsdomain.Event{
		ID:          "evt-1",
		OrganizerID: 7,
		Title:       "Launch Party",
		Description: "Celebrate the release.",
		Location:    "Rooftop",
		StartsAt:    time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC),
		Status:      eventsdomain.EventStatusPublished,
		Capacity:    40,
	}
}

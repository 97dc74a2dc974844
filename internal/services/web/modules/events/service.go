package events

import (
	"context"
	"strings"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
)

const (
	listPageSize    = 50
	guestPageSize   = 100
	messagePageSize = 50
)

// EventDetail aggregates everything the event detail page renders.
type EventDetail struct {
	Event    eventsdomain.Event
	RSVPs    []eventsdomain.RSVP
	Messages []eventsdomain.Message
}

type service struct {
	events module.EventsClient
}

type unavailableEvents struct{}

func (unavailableEvents) ListEvents(context.Context, eventsdomain.ListEventsInput) (eventsdomain.EventPage, error) {
	return eventsdomain.EventPage{}, nil
}

func (unavailableEvents) GetEvent(context.Context, string) (eventsdomain.Event, error) {
	return eventsdomain.Event{}, eventsdomain.ErrNotFound
}

func (unavailableEvents) ListRSVPs(context.Context, eventsdomain.ListRSVPsInput) (eventsdomain.RSVPPage, error) {
	return eventsdomain.RSVPPage{}, nil
}

func (unavailableEvents) ListMessages(context.Context, eventsdomain.ListMessagesInput) (eventsdomain.MessagePage, error) {
	return eventsdomain.MessagePage{}, nil
}

func newService(events module.EventsClient) service {
	if events == nil {
		events = unavailableEvents{}
	}
	return service{events: events}
}

// listEvents returns the first page of one organizer's events. An unresolved
// organizer renders as an empty directory.
func (s service) listEvents(ctx context.Context, organizerID int64) ([]eventsdomain.Event, error) {
	if organizerID <= 0 {
		return nil, nil
	}
	page, err := s.events.ListEvents(ctx, eventsdomain.ListEventsInput{
		OrganizerID: organizerID,
		PageSize:    listPageSize,
	})
	if err != nil {
		return nil, err
	}
	return page.Events, nil
}

// loadEventDetail loads one event with its guest list and broadcast history.
func (s service) loadEventDetail(ctx context.Context, eventID string) (EventDetail, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return EventDetail{}, eventsdomain.ErrNotFound
	}
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return EventDetail{}, err
	}
	rsvps, err := s.events.ListRSVPs(ctx, eventsdomain.ListRSVPsInput{EventID: eventID, PageSize: guestPageSize})
	if err != nil {
		return EventDetail{}, err
	}
	messages, err := s.events.ListMessages(ctx, eventsdomain.ListMessagesInput{EventID: eventID, PageSize: messagePageSize})
	if err != nil {
		return EventDetail{}, err
	}
	return EventDetail{Event: event, RSVPs: rsvps.RSVPs, Messages: messages.Messages}, nil
}

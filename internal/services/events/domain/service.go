package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/id"
)

var (
	// ErrNotFound indicates an event, RSVP, or message record was not found.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a write conflicted with existing uniqueness constraints.
	ErrConflict = errors.New("record conflict")
	// ErrStoreNotConfigured indicates the service is missing persistence wiring.
	ErrStoreNotConfigured = errors.New("event store is not configured")
	// ErrIDGeneratorNotConfigured indicates an ID generator is required.
	ErrIDGeneratorNotConfigured = errors.New("event id generator is not configured")
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// EventPage is a paged organizer event listing.
type EventPage struct {
	Events        []Event
	NextPageToken string
}

// RSVPPage is a paged guest list view for one event.
type RSVPPage struct {
	RSVPs         []RSVP
	NextPageToken string
}

// MessagePage is a paged broadcast history view for one event.
type MessagePage struct {
	Messages      []Message
	NextPageToken string
}

// ListEventsQuery configures organizer event listing at the storage boundary.
type ListEventsQuery struct {
	// Filter is an AIP-160 expression over status, location, starts_at,
	// created_at, and capacity. Empty means no filtering.
	Filter    string
	PageSize  int
	PageToken string
}

// ListEventsInput configures organizer event listing.
type ListEventsInput struct {
	OrganizerID int64
	Filter      string
	PageSize    int
	PageToken   string
}

// ListRSVPsInput configures event guest list paging.
type ListRSVPsInput struct {
	EventID   string
	PageSize  int
	PageToken string
}

// ListMessagesInput configures event broadcast history paging.
type ListMessagesInput struct {
	EventID   string
	PageSize  int
	PageToken string
}

// Store is the domain persistence boundary for event lifecycle behavior.
type Store interface {
	PutEvent(ctx context.Context, event Event) error
	GetEvent(ctx context.Context, eventID string) (Event, error)
	UpdateEvent(ctx context.Context, event Event) error
	ListEventsByOrganizer(ctx context.Context, organizerID int64, query ListEventsQuery) (EventPage, error)

	GetRSVPByEventAndEmail(ctx context.Context, eventID string, guestEmail string) (RSVP, error)
	PutRSVP(ctx context.Context, rsvp RSVP) error
	UpdateRSVP(ctx context.Context, rsvp RSVP) error
	ListRSVPsByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (RSVPPage, error)
	CountAttendingRSVPs(ctx context.Context, eventID string) (int, error)

	PutMessage(ctx context.Context, message Message) error
	ListMessagesByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (MessagePage, error)
}

// Service orchestrates event, RSVP, and broadcast lifecycle behavior.
type Service struct {
	store Store
	clock func() time.Time
	newID func() (string, error)
}

// NewService constructs event domain use-cases.
func NewService(store Store, clock func() time.Time, newID func() (string, error)) *Service {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = id.NewID
	}
	return &Service{
		store: store,
		clock: clock,
		newID: newID,
	}
}

// CreateEvent validates and stores one event in draft status.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (Event, error) {
	if s == nil || s.store == nil {
		return Event{}, ErrStoreNotConfigured
	}
	if s.newID == nil {
		return Event{}, ErrIDGeneratorNotConfigured
	}
	if input.OrganizerID <= 0 {
		return Event{}, ErrOrganizerMissing
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Event{}, ErrTitleEmpty
	}
	if input.StartsAt.IsZero() {
		return Event{}, ErrStartMissing
	}
	if !input.EndsAt.IsZero() && !input.EndsAt.After(input.StartsAt) {
		return Event{}, ErrEndBeforeStart
	}
	if input.Capacity < 0 {
		return Event{}, ErrInvalidCapacity
	}

	eventID, err := s.newID()
	if err != nil {
		return Event{}, err
	}
	now := s.nowUTC()
	event := Event{
		ID:          eventID,
		OrganizerID: input.OrganizerID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		StartsAt:    input.StartsAt.UTC(),
		Status:      EventStatusDraft,
		Capacity:    input.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !input.EndsAt.IsZero() {
		event.EndsAt = input.EndsAt.UTC()
	}
	if err := s.store.PutEvent(ctx, event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// GetEvent loads one event by ID.
func (s *Service) GetEvent(ctx context.Context, eventID string) (Event, error) {
	if s == nil || s.store == nil {
		return Event{}, ErrStoreNotConfigured
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return Event{}, ErrEventIDRequired
	}
	return s.store.GetEvent(ctx, eventID)
}

// ListEvents lists one organizer's events newest first.
func (s *Service) ListEvents(ctx context.Context, input ListEventsInput) (EventPage, error) {
	if s == nil || s.store == nil {
		return EventPage{}, ErrStoreNotConfigured
	}
	if input.OrganizerID <= 0 {
		return EventPage{}, ErrOrganizerMissing
	}
	pageSize := input.PageSize
	switch {
	case pageSize <= 0:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}
	return s.store.ListEventsByOrganizer(ctx, input.OrganizerID, ListEventsQuery{
		Filter:    strings.TrimSpace(input.Filter),
		PageSize:  pageSize,
		PageToken: strings.TrimSpace(input.PageToken),
	})
}

// PublishEvent moves one draft event to published.
func (s *Service) PublishEvent(ctx context.Context, organizerID int64, eventID string) (Event, error) {
	return s.transitionEvent(ctx, organizerID, eventID, EventStatusPublished)
}

// CancelEvent cancels one draft or published event.
func (s *Service) CancelEvent(ctx context.Context, organizerID int64, eventID string) (Event, error) {
	return s.transitionEvent(ctx, organizerID, eventID, EventStatusCanceled)
}

// CompleteEvent marks one published event as completed.
func (s *Service) CompleteEvent(ctx context.Context, organizerID int64, eventID string) (Event, error) {
	return s.transitionEvent(ctx, organizerID, eventID, EventStatusCompleted)
}

func (s *Service) transitionEvent(ctx context.Context, organizerID int64, eventID string, to EventStatus) (Event, error) {
	if s == nil || s.store == nil {
		return Event{}, ErrStoreNotConfigured
	}
	if organizerID <= 0 {
		return Event{}, ErrOrganizerMissing
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return Event{}, ErrEventIDRequired
	}
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return Event{}, err
	}
	if event.OrganizerID != organizerID {
		return Event{}, ErrNotOrganizer
	}
	if !isEventStatusTransitionAllowed(event.Status, to) {
		return Event{}, apperrors.WithMetadata(
			apperrors.CodeEventInvalidStatusTransition,
			"event status transition is not allowed",
			map[string]string{
				"FromStatus": string(event.Status),
				"ToStatus":   string(to),
			},
		)
	}
	event.Status = to
	event.UpdatedAt = s.nowUTC()
	if err := s.store.UpdateEvent(ctx, event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// SubmitRSVP records a guest response for a published event. Guests are
// identified by email within an event, so a resubmission updates the
// existing response instead of creating a duplicate.
func (s *Service) SubmitRSVP(ctx context.Context, input SubmitRSVPInput) (RSVP, error) {
	if s == nil || s.store == nil {
		return RSVP{}, ErrStoreNotConfigured
	}
	if s.newID == nil {
		return RSVP{}, ErrIDGeneratorNotConfigured
	}
	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return RSVP{}, ErrRSVPEventIDRequired
	}
	guestName := strings.TrimSpace(input.GuestName)
	if guestName == "" {
		return RSVP{}, ErrGuestNameEmpty
	}
	guestEmail, err := NormalizeGuestEmail(input.GuestEmail)
	if err != nil {
		return RSVP{}, err
	}
	switch input.Status {
	case RSVPStatusAttending, RSVPStatusNotAttending, RSVPStatusMaybe:
	default:
		return RSVP{}, ErrInvalidRSVPStatus
	}

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return RSVP{}, err
	}
	if !event.IsOpenForRSVP() {
		return RSVP{}, ErrEventNotOpen
	}

	existing, err := s.store.GetRSVPByEventAndEmail(ctx, eventID, guestEmail)
	if err == nil {
		return s.updateRSVP(ctx, event, existing, guestName, input.Status)
	}
	if !errors.Is(err, ErrNotFound) {
		return RSVP{}, err
	}

	if input.Status == RSVPStatusAttending {
		if err := s.checkCapacity(ctx, event); err != nil {
			return RSVP{}, err
		}
	}
	rsvpID, err := s.newID()
	if err != nil {
		return RSVP{}, err
	}
	now := s.nowUTC()
	rsvp := RSVP{
		ID:         rsvpID,
		EventID:    eventID,
		GuestName:  guestName,
		GuestEmail: guestEmail,
		Status:     input.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.PutRSVP(ctx, rsvp); err != nil {
		// Two guests racing on the same email: fall back to updating the
		// response that won the insert.
		if errors.Is(err, ErrConflict) {
			existing, lookupErr := s.store.GetRSVPByEventAndEmail(ctx, eventID, guestEmail)
			if lookupErr == nil {
				return s.updateRSVP(ctx, event, existing, guestName, input.Status)
			}
			if errors.Is(lookupErr, ErrNotFound) {
				return RSVP{}, err
			}
			return RSVP{}, lookupErr
		}
		return RSVP{}, err
	}
	return rsvp, nil
}

func (s *Service) updateRSVP(ctx context.Context, event Event, existing RSVP, guestName string, status RSVPStatus) (RSVP, error) {
	if status == RSVPStatusAttending && existing.Status != RSVPStatusAttending {
		if err := s.checkCapacity(ctx, event); err != nil {
			return RSVP{}, err
		}
	}
	existing.GuestName = guestName
	existing.Status = status
	existing.UpdatedAt = s.nowUTC()
	if err := s.store.UpdateRSVP(ctx, existing); err != nil {
		return RSVP{}, err
	}
	return existing, nil
}

func (s *Service) checkCapacity(ctx context.Context, event Event) error {
	if event.Capacity <= 0 {
		return nil
	}
	attending, err := s.store.CountAttendingRSVPs(ctx, event.ID)
	if err != nil {
		return err
	}
	if attending >= event.Capacity {
		return ErrEventFull
	}
	return nil
}

// ListRSVPs lists one event's guest responses newest first.
func (s *Service) ListRSVPs(ctx context.Context, input ListRSVPsInput) (RSVPPage, error) {
	if s == nil || s.store == nil {
		return RSVPPage{}, ErrStoreNotConfigured
	}
	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return RSVPPage{}, ErrRSVPEventIDRequired
	}
	pageSize := input.PageSize
	switch {
	case pageSize <= 0:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}
	return s.store.ListRSVPsByEvent(ctx, eventID, pageSize, strings.TrimSpace(input.PageToken))
}

// SendMessage records one organizer broadcast to an event's attending guests.
func (s *Service) SendMessage(ctx context.Context, input SendMessageInput) (Message, error) {
	if s == nil || s.store == nil {
		return Message{}, ErrStoreNotConfigured
	}
	if s.newID == nil {
		return Message{}, ErrIDGeneratorNotConfigured
	}
	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return Message{}, ErrMessageEventIDRequired
	}
	if input.SenderID <= 0 {
		return Message{}, ErrSenderMissing
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return Message{}, ErrSubjectEmpty
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return Message{}, ErrBodyEmpty
	}

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return Message{}, err
	}
	if event.OrganizerID != input.SenderID {
		return Message{}, ErrNotOrganizer
	}
	recipientCount, err := s.store.CountAttendingRSVPs(ctx, eventID)
	if err != nil {
		return Message{}, err
	}

	messageID, err := s.newID()
	if err != nil {
		return Message{}, err
	}
	message := Message{
		ID:             messageID,
		EventID:        eventID,
		SenderID:       input.SenderID,
		Subject:        subject,
		Body:           body,
		RecipientCount: recipientCount,
		CreatedAt:      s.nowUTC(),
	}
	if err := s.store.PutMessage(ctx, message); err != nil {
		return Message{}, err
	}
	return message, nil
}

// ListMessages lists one event's broadcast history newest first.
func (s *Service) ListMessages(ctx context.Context, input ListMessagesInput) (MessagePage, error) {
	if s == nil || s.store == nil {
		return MessagePage{}, ErrStoreNotConfigured
	}
	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return MessagePage{}, ErrMessageEventIDRequired
	}
	pageSize := input.PageSize
	switch {
	case pageSize <= 0:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}
	return s.store.ListMessagesByEvent(ctx, eventID, pageSize, strings.TrimSpace(input.PageToken))
}

func (s *Service) nowUTC() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// Package storage defines persistence contracts for event management state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested event, RSVP, or message record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a requested write conflicts with uniqueness constraints.
	ErrConflict = errors.New("record conflict")
	// ErrInvalidFilter indicates a list filter expression could not be translated.
	ErrInvalidFilter = errors.New("invalid filter expression")
)

// EventRecord stores one scheduled event row.
type EventRecord struct {
	ID          string
	OrganizerID int64
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	// EndsAt is zero when the event is open-ended.
	EndsAt    time.Time
	Status    string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventPage stores a paged organizer event listing result.
type EventPage struct {
	Events        []EventRecord
	NextPageToken string
}

// ListEventsQuery configures one organizer event listing.
type ListEventsQuery struct {
	// Filter holds an AIP-160 expression translated by the backend.
	Filter    string
	PageSize  int
	PageToken string
}

// RSVPRecord stores one guest response row. Guest email is unique per event.
type RSVPRecord struct {
	ID         string
	EventID    string
	GuestName  string
	GuestEmail string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RSVPPage stores a paged guest list result.
type RSVPPage struct {
	RSVPs         []RSVPRecord
	NextPageToken string
}

// MessageRecord stores one organizer broadcast row.
type MessageRecord struct {
	ID             string
	EventID        string
	SenderID       int64
	Subject        string
	Body           string
	RecipientCount int
	CreatedAt      time.Time
}

// MessagePage stores a paged broadcast history result.
type MessagePage struct {
	Messages      []MessageRecord
	NextPageToken string
}

// EventStore persists event lifecycle state.
type EventStore interface {
	PutEvent(ctx context.Context, record EventRecord) error
	GetEvent(ctx context.Context, eventID string) (EventRecord, error)
	UpdateEvent(ctx context.Context, record EventRecord) error
	ListEventsByOrganizer(ctx context.Context, organizerID int64, query ListEventsQuery) (EventPage, error)
}

// RSVPStore persists guest response state.
type RSVPStore interface {
	PutRSVP(ctx context.Context, record RSVPRecord) error
	UpdateRSVP(ctx context.Context, record RSVPRecord) error
	GetRSVPByEventAndEmail(ctx context.Context, eventID string, guestEmail string) (RSVPRecord, error)
	ListRSVPsByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (RSVPPage, error)
	CountAttendingRSVPs(ctx context.Context, eventID string) (int, error)
}

// MessageStore persists organizer broadcast state.
type MessageStore interface {
	PutMessage(ctx context.Context, record MessageRecord) error
	ListMessagesByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (MessagePage, error)
}

// StatsStore aggregates dashboard counters from stored records.
type StatsStore interface {
	CountEventsByOrganizer(ctx context.Context, organizerID int64) (int, error)
	CountActiveEventsByOrganizer(ctx context.Context, organizerID int64, now time.Time) (int, error)
	CountUpcomingEventsByOrganizer(ctx context.Context, organizerID int64, from time.Time, until time.Time) (int, error)
	CountAttendingRSVPsByOrganizer(ctx context.Context, organizerID int64) (int, error)
	CountRSVPsByOrganizerSince(ctx context.Context, organizerID int64, since time.Time) (int, error)
	CountMessagesBySenderSince(ctx context.Context, senderID int64, since time.Time) (int, error)
	CountEventsCreatedByOrganizerSince(ctx context.Context, organizerID int64, since time.Time) (int, error)
}

// Package domain holds the event management domain model and service logic.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
)

// EventStatus describes the event lifecycle label used by domain decisions.
type EventStatus string

const (
	EventStatusUnspecified EventStatus = ""
	EventStatusDraft       EventStatus = "draft"
	EventStatusPublished   EventStatus = "published"
	EventStatusCanceled    EventStatus = "canceled"
	EventStatusCompleted   EventStatus = "completed"
)

var (
	// ErrEventIDRequired indicates a missing event ID.
	ErrEventIDRequired = apperrors.New(apperrors.CodeEventIDRequired, "event id is required")
	// ErrTitleEmpty indicates a missing event title.
	ErrTitleEmpty = apperrors.New(apperrors.CodeEventTitleEmpty, "event title is required")
	// ErrStartMissing indicates a missing event start time.
	ErrStartMissing = apperrors.New(apperrors.CodeEventStartMissing, "event start time is required")
	// ErrEndBeforeStart indicates an event end time at or before its start.
	ErrEndBeforeStart = apperrors.New(apperrors.CodeEventEndBeforeStart, "event end time must be after its start time")
	// ErrInvalidCapacity indicates a negative event capacity.
	ErrInvalidCapacity = apperrors.New(apperrors.CodeEventInvalidCapacity, "event capacity cannot be negative")
	// ErrOrganizerMissing indicates a missing organizer user ID.
	ErrOrganizerMissing = apperrors.New(apperrors.CodeEventOrganizerMissing, "event organizer is required")
	// ErrEventFull indicates the event reached its attending capacity.
	ErrEventFull = apperrors.New(apperrors.CodeEventFull, "event has reached capacity")
	// ErrEventNotOpen indicates the event does not accept RSVPs in its current status.
	ErrEventNotOpen = apperrors.New(apperrors.CodeEventNotOpen, "event is not open for RSVPs")
	// ErrNotOrganizer indicates the caller does not organize the event.
	ErrNotOrganizer = apperrors.New(apperrors.CodeNotEventOrganizer, "caller is not the event organizer")
)

// ParseEventStatus canonicalizes an event status label.
func ParseEventStatus(value string) (EventStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "draft":
		return EventStatusDraft, true
	case "published":
		return EventStatusPublished, true
	case "canceled":
		return EventStatusCanceled, true
	case "completed":
		return EventStatusCompleted, true
	default:
		return EventStatusUnspecified, false
	}
}

// isEventStatusTransitionAllowed enforces valid event lifecycle transitions.
func isEventStatusTransitionAllowed(from, to EventStatus) bool {
	switch from {
	case EventStatusDraft:
		return to == EventStatusPublished || to == EventStatusCanceled
	case EventStatusPublished:
		return to == EventStatusCanceled || to == EventStatusCompleted
	default:
		return false
	}
}

// IsEventStatusTransitionAllowed reports whether a status transition is permitted.
func IsEventStatusTransitionAllowed(from, to EventStatus) bool {
	return isEventStatusTransitionAllowed(from, to)
}

// Event represents one scheduled gathering managed by an organizer.
type Event struct {
	ID          string
	OrganizerID int64
	Title       string
	Description string
	Location    string
	// StartsAt is when the event begins, always UTC.
	StartsAt time.Time
	// EndsAt is when the event finishes. A zero value means open-ended.
	EndsAt time.Time
	Status EventStatus
	// Capacity limits attending RSVPs. Zero means unlimited.
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the event counts toward the active dashboard stat:
// published and not yet over at the given instant.
func (e Event) IsActive(now time.Time) bool {
	if e.Status != EventStatusPublished {
		return false
	}
	if e.EndsAt.IsZero() {
		return e.StartsAt.After(now)
	}
	return e.EndsAt.After(now)
}

// IsOpenForRSVP reports whether the event currently accepts RSVP submissions.
func (e Event) IsOpenForRSVP() bool {
	return e.Status == EventStatusPublished
}

// CreateEventInput describes the fields needed to create an event.
type CreateEventInput struct {
	OrganizerID int64
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    int
}

package domain

import (
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
)

// RSVPStatus describes a guest's response to an event invitation.
type RSVPStatus string

const (
	RSVPStatusUnspecified  RSVPStatus = ""
	RSVPStatusAttending    RSVPStatus = "attending"
	RSVPStatusNotAttending RSVPStatus = "not_attending"
	RSVPStatusMaybe        RSVPStatus = "maybe"
)

var (
	// ErrRSVPEventIDRequired indicates a missing event ID on an RSVP.
	ErrRSVPEventIDRequired = apperrors.New(apperrors.CodeRSVPEmptyEventID, "event id is required for an rsvp")
	// ErrGuestNameEmpty indicates a missing guest name.
	ErrGuestNameEmpty = apperrors.New(apperrors.CodeRSVPGuestNameEmpty, "guest name is required")
	// ErrGuestEmailInvalid indicates a missing or malformed guest email.
	ErrGuestEmailInvalid = apperrors.New(apperrors.CodeRSVPGuestEmailInvalid, "guest email is invalid")
	// ErrInvalidRSVPStatus indicates an unrecognized RSVP status label.
	ErrInvalidRSVPStatus = apperrors.New(apperrors.CodeRSVPInvalidStatus, "rsvp status is invalid")
)

// ParseRSVPStatus canonicalizes an RSVP status label.
func ParseRSVPStatus(value string) (RSVPStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "attending":
		return RSVPStatusAttending, true
	case "not_attending":
		return RSVPStatusNotAttending, true
	case "maybe":
		return RSVPStatusMaybe, true
	default:
		return RSVPStatusUnspecified, false
	}
}

// NormalizeGuestEmail lowercases and validates a guest email address.
func NormalizeGuestEmail(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", ErrGuestEmailInvalid
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrGuestEmailInvalid
	}
	return normalized, nil
}

// RSVP represents one guest response to an event. A guest is identified by
// email within an event; resubmitting updates the existing response.
type RSVP struct {
	ID         string
	EventID    string
	GuestName  string
	GuestEmail string
	Status     RSVPStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SubmitRSVPInput describes the fields needed to submit or update an RSVP.
type SubmitRSVPInput struct {
	EventID    string
	GuestName  string
	GuestEmail string
	Status     RSVPStatus
}

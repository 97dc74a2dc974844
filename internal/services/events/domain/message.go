package domain

import (
	"time"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
)

var (
	// ErrMessageEventIDRequired indicates a missing event ID on a message.
	ErrMessageEventIDRequired = apperrors.New(apperrors.CodeMessageEmptyEventID, "event id is required for a message")
	// ErrSubjectEmpty indicates a missing message subject.
	ErrSubjectEmpty = apperrors.New(apperrors.CodeMessageSubjectEmpty, "message subject is required")
	// ErrBodyEmpty indicates a missing message body.
	ErrBodyEmpty = apperrors.New(apperrors.CodeMessageBodyEmpty, "message body is required")
	// ErrSenderMissing indicates a missing sender user ID.
	ErrSenderMissing = apperrors.New(apperrors.CodeMessageSenderMissing, "message sender is required")
)

// Message represents one broadcast sent by an organizer to event guests.
type Message struct {
	ID      string
	EventID string
	// SenderID is the organizer user who sent the broadcast.
	SenderID int64
	Subject  string
	Body     string
	// RecipientCount snapshots how many attending guests the broadcast
	// targeted at send time.
	RecipientCount int
	CreatedAt      time.Time
}

// SendMessageInput describes the fields needed to send an event broadcast.
type SendMessageInput struct {
	EventID  string
	SenderID int64
	Subject  string
	Body     string
}

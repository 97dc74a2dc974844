package domain

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EventCreateInput represents the MCP tool input for event creation.
type EventCreateInput struct {
	OrganizerID int64  `json:"organizer_id" jsonschema:"organizer user identifier"`
	Title       string `json:"title" jsonschema:"event title"`
	Description string `json:"description,omitempty" jsonschema:"optional event description"`
	Location    string `json:"location,omitempty" jsonschema:"optional event location"`
	StartsAt    string `json:"starts_at" jsonschema:"RFC3339 timestamp when the event starts"`
	EndsAt      string `json:"ends_at,omitempty" jsonschema:"optional RFC3339 timestamp when the event ends; omit for open-ended events"`
	Capacity    int    `json:"capacity,omitempty" jsonschema:"attendee capacity; zero means unlimited"`
}

// EventGetInput represents the MCP tool input for fetching one event.
type EventGetInput struct {
	EventID string `json:"event_id" jsonschema:"event identifier"`
}

// EventListInput represents the MCP tool input for listing organizer events.
type EventListInput struct {
	OrganizerID int64  `json:"organizer_id" jsonschema:"organizer user identifier"`
	Filter      string `json:"filter,omitempty" jsonschema:"optional AIP-160 filter, e.g. status = \"published\""`
	PageSize    int    `json:"page_size,omitempty" jsonschema:"maximum events per page"`
	PageToken   string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
}

// EventStatusChangeInput represents the MCP tool input for event lifecycle
// changes.
type EventStatusChangeInput struct {
	OrganizerID int64  `json:"organizer_id" jsonschema:"organizer user identifier"`
	EventID     string `json:"event_id" jsonschema:"event identifier"`
}

// EventResult represents the MCP tool output for a single event.
type EventResult struct {
	ID          string `json:"id" jsonschema:"event identifier"`
	OrganizerID int64  `json:"organizer_id" jsonschema:"organizer user identifier"`
	Title       string `json:"title" jsonschema:"event title"`
	Description string `json:"description,omitempty" jsonschema:"event description"`
	Location    string `json:"location,omitempty" jsonschema:"event location"`
	StartsAt    string `json:"starts_at" jsonschema:"RFC3339 timestamp when the event starts"`
	EndsAt      string `json:"ends_at,omitempty" jsonschema:"RFC3339 timestamp when the event ends; empty for open-ended events"`
	Status      string `json:"status" jsonschema:"event status (draft, published, canceled, completed)"`
	Capacity    int    `json:"capacity" jsonschema:"attendee capacity; zero means unlimited"`
	CreatedAt   string `json:"created_at" jsonschema:"RFC3339 timestamp when the event was created"`
	UpdatedAt   string `json:"updated_at" jsonschema:"RFC3339 timestamp when the event was last updated"`
}

// EventListResult represents the MCP tool output for event listings.
type EventListResult struct {
	Events        []EventResult `json:"events" jsonschema:"events ordered newest first"`
	NextPageToken string        `json:"next_page_token,omitempty" jsonschema:"token for the next page; empty on the last page"`
}

// RSVPSubmitInput represents the MCP tool input for submitting a guest
// response.
type RSVPSubmitInput struct {
	EventID     string `json:"event_id" jsonschema:"event identifier"`
	GuestName   string `json:"guest_name" jsonschema:"guest display name"`
	GuestEmail  string `json:"guest_email" jsonschema:"guest email; one response per email per event"`
	Status      string `json:"status" jsonschema:"response status (attending, not_attending, maybe)"`
	InviteGrant string `json:"invite_grant,omitempty" jsonschema:"optional signed invite grant token"`
}

// RSVPListInput represents the MCP tool input for listing event responses.
type RSVPListInput struct {
	EventID   string `json:"event_id" jsonschema:"event identifier"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum responses per page"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
}

// RSVPResult represents the MCP tool output for a single guest response.
type RSVPResult struct {
	ID         string `json:"id" jsonschema:"response identifier"`
	EventID    string `json:"event_id" jsonschema:"event identifier"`
	GuestName  string `json:"guest_name" jsonschema:"guest display name"`
	GuestEmail string `json:"guest_email" jsonschema:"guest email"`
	Status     string `json:"status" jsonschema:"response status"`
	CreatedAt  string `json:"created_at" jsonschema:"RFC3339 timestamp when the response was created"`
	UpdatedAt  string `json:"updated_at" jsonschema:"RFC3339 timestamp when the response was last updated"`
}

// RSVPListResult represents the MCP tool output for response listings.
type RSVPListResult struct {
	RSVPs         []RSVPResult `json:"rsvps" jsonschema:"responses ordered newest first"`
	NextPageToken string       `json:"next_page_token,omitempty" jsonschema:"token for the next page; empty on the last page"`
}

// MessageSendInput represents the MCP tool input for an organizer broadcast.
type MessageSendInput struct {
	SenderID int64  `json:"sender_id" jsonschema:"sending organizer user identifier"`
	EventID  string `json:"event_id" jsonschema:"event identifier"`
	Subject  string `json:"subject" jsonschema:"message subject"`
	Body     string `json:"body" jsonschema:"message body"`
}

// MessageListInput represents the MCP tool input for listing event broadcasts.
type MessageListInput struct {
	EventID   string `json:"event_id" jsonschema:"event identifier"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum messages per page"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
}

// MessageResult represents the MCP tool output for a single broadcast.
type MessageResult struct {
	ID             string `json:"id" jsonschema:"message identifier"`
	EventID        string `json:"event_id" jsonschema:"event identifier"`
	SenderID       int64  `json:"sender_id" jsonschema:"sending organizer user identifier"`
	Subject        string `json:"subject" jsonschema:"message subject"`
	Body           string `json:"body" jsonschema:"message body"`
	RecipientCount int    `json:"recipient_count" jsonschema:"attending guests at send time"`
	CreatedAt      string `json:"created_at" jsonschema:"RFC3339 timestamp when the message was sent"`
}

// MessageListResult represents the MCP tool output for broadcast listings.
type MessageListResult struct {
	Messages      []MessageResult `json:"messages" jsonschema:"messages ordered newest first"`
	NextPageToken string          `json:"next_page_token,omitempty" jsonschema:"token for the next page; empty on the last page"`
}

// EventCreateTool defines the MCP tool schema for creating events.
func EventCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_create",
		Description: "Creates a draft event for an organizer",
	}
}

// EventGetTool defines the MCP tool schema for fetching one event.
func EventGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_get",
		Description: "Fetches one event by identifier",
	}
}

// EventListTool defines the MCP tool schema for listing organizer events.
func EventListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_list",
		Description: "Lists an organizer's events, newest first, with optional filtering",
	}
}

// EventPublishTool defines the MCP tool schema for publishing events.
func EventPublishTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_publish",
		Description: "Publishes a draft event, opening it for RSVPs",
	}
}

// EventCancelTool defines the MCP tool schema for canceling events.
func EventCancelTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_cancel",
		Description: "Cancels a draft or published event",
	}
}

// RSVPSubmitTool defines the MCP tool schema for submitting guest responses.
func RSVPSubmitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "rsvp_submit",
		Description: "Submits or updates a guest response for a published event",
	}
}

// RSVPListTool defines the MCP tool schema for listing guest responses.
func RSVPListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "rsvp_list",
		Description: "Lists guest responses for an event, newest first",
	}
}

// MessageSendTool defines the MCP tool schema for organizer broadcasts.
func MessageSendTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "message_send",
		Description: "Sends a broadcast message to an event's attending guests",
	}
}

// MessageListTool defines the MCP tool schema for listing broadcasts.
func MessageListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "message_list",
		Description: "Lists broadcast messages sent for an event, newest first",
	}
}

// formatTime renders a timestamp as RFC3339, or empty when unset.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses an RFC3339 timestamp, treating empty as unset.
func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}

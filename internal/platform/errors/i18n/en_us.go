package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeEventIDRequired              = "EVENT_ID_REQUIRED"
	CodeEventTitleEmpty              = "EVENT_TITLE_EMPTY"
	CodeEventStartMissing            = "EVENT_START_MISSING"
	CodeEventEndBeforeStart          = "EVENT_END_BEFORE_START"
	CodeEventInvalidStatusTransition = "EVENT_INVALID_STATUS_TRANSITION"
	CodeEventInvalidCapacity         = "EVENT_INVALID_CAPACITY"
	CodeEventOrganizerMissing        = "EVENT_ORGANIZER_MISSING"
	CodeEventFull                    = "EVENT_FULL"
	CodeEventNotOpen                 = "EVENT_NOT_OPEN"
	CodeNotEventOrganizer            = "NOT_EVENT_ORGANIZER"
	CodeRSVPEmptyEventID             = "RSVP_EMPTY_EVENT_ID"
	CodeRSVPGuestNameEmpty           = "RSVP_GUEST_NAME_EMPTY"
	CodeRSVPGuestEmailInvalid        = "RSVP_GUEST_EMAIL_INVALID"
	CodeRSVPInvalidStatus            = "RSVP_INVALID_STATUS"
	CodeMessageEmptyEventID          = "MESSAGE_EMPTY_EVENT_ID"
	CodeMessageSubjectEmpty          = "MESSAGE_SUBJECT_EMPTY"
	CodeMessageBodyEmpty             = "MESSAGE_BODY_EMPTY"
	CodeMessageSenderMissing         = "MESSAGE_SENDER_MISSING"
	CodeInviteGrantInvalid           = "INVITE_GRANT_INVALID"
	CodeInviteGrantExpired           = "INVITE_GRANT_EXPIRED"
	CodeInviteGrantMismatch          = "INVITE_GRANT_MISMATCH"
	CodeStatsUserIDInvalid           = "STATS_USER_ID_INVALID"
	CodeStatsContractViolation       = "STATS_CONTRACT_VIOLATION"
	CodeUserNotFound                 = "USER_NOT_FOUND"
	CodeFilterInvalid                = "FILTER_INVALID"
	CodeNotFound                     = "NOT_FOUND"
	CodeAlreadyExists                = "ALREADY_EXISTS"
	CodeUnknown                      = "UNKNOWN"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Event errors
		CodeEventIDRequired:              "Event ID is required",
		CodeEventTitleEmpty:              "Event title cannot be empty",
		CodeEventStartMissing:            "Event start time is required",
		CodeEventEndBeforeStart:          "Event end time must be after its start time",
		CodeEventInvalidStatusTransition: "Cannot move event from {{.FromStatus}} to {{.ToStatus}}",
		CodeEventInvalidCapacity:         "Event capacity cannot be negative",
		CodeEventOrganizerMissing:        "An organizer is required to create an event",
		CodeEventFull:                    "This event has reached its capacity",
		CodeEventNotOpen:                 "This event is not open for RSVPs",
		CodeNotEventOrganizer:            "Only the event organizer can do that",

		// RSVP errors
		CodeRSVPEmptyEventID:      "Event ID is required for an RSVP",
		CodeRSVPGuestNameEmpty:    "Guest name cannot be empty",
		CodeRSVPGuestEmailInvalid: "Guest email address is invalid",
		CodeRSVPInvalidStatus:     "Invalid RSVP status specified",

		// Message errors
		CodeMessageEmptyEventID:  "Event ID is required for a message",
		CodeMessageSubjectEmpty:  "Message subject cannot be empty",
		CodeMessageBodyEmpty:     "Message body cannot be empty",
		CodeMessageSenderMissing: "A sender is required to send a message",

		// Invite grant errors
		CodeInviteGrantInvalid:  "Invite link is invalid",
		CodeInviteGrantExpired:  "Invite link has expired",
		CodeInviteGrantMismatch: "Invite link {{.Field}} does not match",

		// Dashboard stats errors
		CodeStatsUserIDInvalid:     "A valid user ID is required",
		CodeStatsContractViolation: "Dashboard statistics are temporarily unavailable",

		// User errors
		CodeUserNotFound: "User was not found",

		// List query errors
		CodeFilterInvalid: "The list filter expression is invalid",

		// Storage errors
		CodeNotFound:      "The requested resource was not found",
		CodeAlreadyExists: "The resource already exists",

		CodeUnknown: "Something went wrong",
	},
}

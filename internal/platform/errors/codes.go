// Package errors provides structured error handling with i18n support.
package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Event errors
	CodeEventIDRequired              Code = "EVENT_ID_REQUIRED"
	CodeEventTitleEmpty              Code = "EVENT_TITLE_EMPTY"
	CodeEventStartMissing            Code = "EVENT_START_MISSING"
	CodeEventEndBeforeStart          Code = "EVENT_END_BEFORE_START"
	CodeEventInvalidStatusTransition Code = "EVENT_INVALID_STATUS_TRANSITION"
	CodeEventInvalidCapacity         Code = "EVENT_INVALID_CAPACITY"
	CodeEventOrganizerMissing        Code = "EVENT_ORGANIZER_MISSING"
	CodeEventFull                    Code = "EVENT_FULL"
	CodeEventNotOpen                 Code = "EVENT_NOT_OPEN"
	CodeNotEventOrganizer            Code = "NOT_EVENT_ORGANIZER"

	// RSVP errors
	CodeRSVPEmptyEventID      Code = "RSVP_EMPTY_EVENT_ID"
	CodeRSVPGuestNameEmpty    Code = "RSVP_GUEST_NAME_EMPTY"
	CodeRSVPGuestEmailInvalid Code = "RSVP_GUEST_EMAIL_INVALID"
	CodeRSVPInvalidStatus     Code = "RSVP_INVALID_STATUS"

	// Message errors
	CodeMessageEmptyEventID  Code = "MESSAGE_EMPTY_EVENT_ID"
	CodeMessageSubjectEmpty  Code = "MESSAGE_SUBJECT_EMPTY"
	CodeMessageBodyEmpty     Code = "MESSAGE_BODY_EMPTY"
	CodeMessageSenderMissing Code = "MESSAGE_SENDER_MISSING"

	// Invite grant errors
	CodeInviteGrantInvalid  Code = "INVITE_GRANT_INVALID"
	CodeInviteGrantExpired  Code = "INVITE_GRANT_EXPIRED"
	CodeInviteGrantMismatch Code = "INVITE_GRANT_MISMATCH"

	// Dashboard stats errors
	CodeStatsUserIDInvalid     Code = "STATS_USER_ID_INVALID"
	CodeStatsContractViolation Code = "STATS_CONTRACT_VIOLATION"

	// User errors
	CodeUserNotFound Code = "USER_NOT_FOUND"

	// List query errors
	CodeFilterInvalid Code = "FILTER_INVALID"

	// Storage errors
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeEventIDRequired,
		CodeEventTitleEmpty,
		CodeEventStartMissing,
		CodeEventEndBeforeStart,
		CodeEventInvalidCapacity,
		CodeEventOrganizerMissing,
		CodeRSVPEmptyEventID,
		CodeRSVPGuestNameEmpty,
		CodeRSVPGuestEmailInvalid,
		CodeRSVPInvalidStatus,
		CodeMessageEmptyEventID,
		CodeMessageSubjectEmpty,
		CodeMessageBodyEmpty,
		CodeMessageSenderMissing,
		CodeInviteGrantInvalid,
		CodeInviteGrantMismatch,
		CodeStatsUserIDInvalid,
		CodeFilterInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeEventInvalidStatusTransition,
		CodeEventFull,
		CodeEventNotOpen,
		CodeInviteGrantExpired:
		return codes.FailedPrecondition

	// PermissionDenied - caller does not own the resource
	case CodeNotEventOrganizer:
		return codes.PermissionDenied

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeUserNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeAlreadyExists:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}

// HTTPStatus maps an error to the HTTP status code web surfaces should emit.
// Non-domain errors map to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	appErr := AsError(err)
	if appErr == nil {
		return http.StatusInternalServerError
	}
	switch appErr.Code.GRPCCode() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.FailedPrecondition:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeEventTitleEmpty, "title empty")
	if !stderrors.Is(err, New(CodeEventTitleEmpty, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeEventFull, "full")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk gone")
	err := Wrap(CodeUnknown, "query events", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "query events" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapWithMetadataKeepsCauseAndFields(t *testing.T) {
	cause := stderrors.New("constraint failed")
	err := WrapWithMetadata(CodeAlreadyExists, "store rsvp", map[string]string{"event_id": "ev1"}, cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Metadata["event_id"] != "ev1" {
		t.Fatalf("metadata = %v, want event_id=ev1", err.Metadata)
	}
	if got := CodeOf(err); got != CodeAlreadyExists {
		t.Fatalf("CodeOf = %q, want %q", got, CodeAlreadyExists)
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", New(CodeUserNotFound, "user not found"))
	if got := CodeOf(wrapped); got != CodeUserNotFound {
		t.Fatalf("CodeOf = %q, want %q", got, CodeUserNotFound)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf plain error = %q, want %q", got, CodeUnknown)
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	cases := []struct {
		code Code
		want codes.Code
	}{
		{CodeStatsUserIDInvalid, codes.InvalidArgument},
		{CodeRSVPGuestEmailInvalid, codes.InvalidArgument},
		{CodeEventInvalidStatusTransition, codes.FailedPrecondition},
		{CodeEventFull, codes.FailedPrecondition},
		{CodeEventNotOpen, codes.FailedPrecondition},
		{CodeInviteGrantExpired, codes.FailedPrecondition},
		{CodeNotEventOrganizer, codes.PermissionDenied},
		{CodeUserNotFound, codes.NotFound},
		{CodeNotFound, codes.NotFound},
		{CodeAlreadyExists, codes.AlreadyExists},
		{CodeStatsContractViolation, codes.Internal},
		{CodeUnknown, codes.Internal},
	}
	for _, tc := range cases {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{New(CodeStatsUserIDInvalid, "bad user id"), http.StatusBadRequest},
		{New(CodeEventFull, "full"), http.StatusConflict},
		{New(CodeNotEventOrganizer, "not the organizer"), http.StatusForbidden},
		{New(CodeUserNotFound, "user not found"), http.StatusNotFound},
		{New(CodeAlreadyExists, "dup"), http.StatusConflict},
		{New(CodeStatsContractViolation, "bad shape"), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", New(CodeNotFound, "missing")), http.StatusNotFound},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestToGRPCStatusCarriesDetails(t *testing.T) {
	err := WithMetadata(CodeInviteGrantMismatch, "grant event mismatch", map[string]string{"Field": "event_id"})
	stErr := err.ToGRPCStatus("en-US", "Invite link event_id does not match")

	st, ok := status.FromError(stErr)
	if !ok {
		t.Fatal("expected grpc status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("status code = %v, want InvalidArgument", st.Code())
	}
	if st.Message() != "grant event mismatch" {
		t.Fatalf("status message = %q", st.Message())
	}
	if len(st.Details()) != 2 {
		t.Fatalf("expected 2 detail payloads, got %d", len(st.Details()))
	}
}

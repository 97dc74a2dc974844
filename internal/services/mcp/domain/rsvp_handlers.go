package domain

import (
	"context"
	"fmt"
	"strings"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain/invite"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RSVPSubmitHandler executes a guest response submission. When grant
// verification is configured and the input carries an invite grant, the grant
// must match the event and guest email before the response is accepted.
func RSVPSubmitHandler(events *eventsdomain.Service, grants *invite.GrantConfig) mcp.ToolHandlerFor[RSVPSubmitInput, RSVPResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RSVPSubmitInput) (*mcp.CallToolResult, RSVPResult, error) {
		if strings.TrimSpace(input.InviteGrant) != "" {
			if grants == nil {
				return nil, RSVPResult{}, fmt.Errorf("invite grants are not configured")
			}
			_, err := invite.ValidateGrant(input.InviteGrant, invite.GrantExpectation{
				EventID:    input.EventID,
				GuestEmail: input.GuestEmail,
			}, *grants)
			if err != nil {
				return nil, RSVPResult{}, err
			}
		}

		status, _ := eventsdomain.ParseRSVPStatus(input.Status)

		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		rsvp, err := events.SubmitRSVP(runCtx, eventsdomain.SubmitRSVPInput{
			EventID:    input.EventID,
			GuestName:  input.GuestName,
			GuestEmail: input.GuestEmail,
			Status:     status,
		})
		if err != nil {
			return nil, RSVPResult{}, mapDomainError("rsvp submit", err)
		}
		return nil, toRSVPResult(rsvp), nil
	}
}

// RSVPListHandler executes an event guest list request.
func RSVPListHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[RSVPListInput, RSVPListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RSVPListInput) (*mcp.CallToolResult, RSVPListResult, error) {
		if strings.TrimSpace(input.EventID) == "" {
			return nil, RSVPListResult{}, fmt.Errorf("event_id is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		page, err := events.ListRSVPs(runCtx, eventsdomain.ListRSVPsInput{
			EventID:   input.EventID,
			PageSize:  input.PageSize,
			PageToken: input.PageToken,
		})
		if err != nil {
			return nil, RSVPListResult{}, mapDomainError("rsvp list", err)
		}

		result := RSVPListResult{
			RSVPs:         make([]RSVPResult, 0, len(page.RSVPs)),
			NextPageToken: page.NextPageToken,
		}
		for _, rsvp := range page.RSVPs {
			result.RSVPs = append(result.RSVPs, toRSVPResult(rsvp))
		}
		return nil, result, nil
	}
}

func toRSVPResult(rsvp eventsdomain.RSVP) RSVPResult {
	return RSVPResult{
		ID:         rsvp.ID,
		EventID:    rsvp.EventID,
		GuestName:  rsvp.GuestName,
		GuestEmail: rsvp.GuestEmail,
		Status:     string(rsvp.Status),
		CreatedAt:  formatTime(rsvp.CreatedAt),
		UpdatedAt:  formatTime(rsvp.UpdatedAt),
	}
}

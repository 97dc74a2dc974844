package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EventCreateHandler executes an event creation request.
func EventCreateHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[EventCreateInput, EventResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventCreateInput) (*mcp.CallToolResult, EventResult, error) {
		startsAt, err := parseTime(input.StartsAt)
		if err != nil {
			return nil, EventResult{}, fmt.Errorf("starts_at must be an RFC3339 timestamp: %w", err)
		}
		endsAt, err := parseTime(input.EndsAt)
		if err != nil {
			return nil, EventResult{}, fmt.Errorf("ends_at must be an RFC3339 timestamp: %w", err)
		}

		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		event, err := events.CreateEvent(runCtx, eventsdomain.CreateEventInput{
			OrganizerID: input.OrganizerID,
			Title:       input.Title,
			Description: input.Description,
			Location:    input.Location,
			StartsAt:    startsAt,
			EndsAt:      endsAt,
			Capacity:    input.Capacity,
		})
		if err != nil {
			return nil, EventResult{}, mapDomainError("event create", err)
		}
		return nil, toEventResult(event), nil
	}
}

// EventGetHandler executes an event lookup request.
func EventGetHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[EventGetInput, EventResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventGetInput) (*mcp.CallToolResult, EventResult, error) {
		if strings.TrimSpace(input.EventID) == "" {
			return nil, EventResult{}, fmt.Errorf("event_id is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		event, err := events.GetEvent(runCtx, input.EventID)
		if err != nil {
			return nil, EventResult{}, mapDomainError("event get", err)
		}
		return nil, toEventResult(event), nil
	}
}

// EventListHandler executes an organizer event listing request.
func EventListHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[EventListInput, EventListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventListInput) (*mcp.CallToolResult, EventListResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		page, err := events.ListEvents(runCtx, eventsdomain.ListEventsInput{
			OrganizerID: input.OrganizerID,
			Filter:      input.Filter,
			PageSize:    input.PageSize,
			PageToken:   input.PageToken,
		})
		if err != nil {
			return nil, EventListResult{}, mapDomainError("event list", err)
		}

		result := EventListResult{
			Events:        make([]EventResult, 0, len(page.Events)),
			NextPageToken: page.NextPageToken,
		}
		for _, event := range page.Events {
			result.Events = append(result.Events, toEventResult(event))
		}
		return nil, result, nil
	}
}

// EventPublishHandler executes an event publish request.
func EventPublishHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[EventStatusChangeInput, EventResult] {
	return eventStatusChangeHandler("event publish", events, (*eventsdomain.Service).PublishEvent)
}

// EventCancelHandler executes an event cancel request.
func EventCancelHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[EventStatusChangeInput, EventResult] {
	return eventStatusChangeHandler("event cancel", events, (*eventsdomain.Service).CancelEvent)
}

func eventStatusChangeHandler(
	verb string,
	events *eventsdomain.Service,
	transition func(*eventsdomain.Service, context.Context, int64, string) (eventsdomain.Event, error),
) mcp.ToolHandlerFor[EventStatusChangeInput, EventResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventStatusChangeInput) (*mcp.CallToolResult, EventResult, error) {
		if strings.TrimSpace(input.EventID) == "" {
			return nil, EventResult{}, fmt.Errorf("event_id is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		event, err := transition(events, runCtx, input.OrganizerID, input.EventID)
		if err != nil {
			return nil, EventResult{}, mapDomainError(verb, err)
		}
		return nil, toEventResult(event), nil
	}
}

func toEventResult(event eventsdomain.Event) EventResult {
	return EventResult{
		ID:          event.ID,
		OrganizerID: event.OrganizerID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    formatTime(event.StartsAt),
		EndsAt:      formatTime(event.EndsAt),
		Status:      string(event.Status),
		Capacity:    event.Capacity,
		CreatedAt:   formatTime(event.CreatedAt),
		UpdatedAt:   formatTime(event.UpdatedAt),
	}
}

// mapDomainError converts plain domain sentinels into coded errors for MCP
// clients. Errors that already carry a code pass through wrapped so the code
// survives the chain.
func mapDomainError(verb string, err error) error {
	switch {
	case errors.Is(err, eventsdomain.ErrNotFound):
		return apperrors.Wrap(apperrors.CodeNotFound, verb+" target was not found", err)
	case errors.Is(err, eventsdomain.ErrConflict):
		return apperrors.Wrap(apperrors.CodeAlreadyExists, verb+" conflicts with existing state", err)
	default:
		return fmt.Errorf("%s failed: %w", verb, err)
	}
}

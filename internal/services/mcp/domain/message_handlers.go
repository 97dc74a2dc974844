package domain

import (
	"context"
	"fmt"
	"strings"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MessageSendHandler executes an organizer broadcast request.
func MessageSendHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[MessageSendInput, MessageResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MessageSendInput) (*mcp.CallToolResult, MessageResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		message, err := events.SendMessage(runCtx, eventsdomain.SendMessageInput{
			EventID:  input.EventID,
			SenderID: input.SenderID,
			Subject:  input.Subject,
			Body:     input.Body,
		})
		if err != nil {
			return nil, MessageResult{}, mapDomainError("message send", err)
		}
		return nil, toMessageResult(message), nil
	}
}

// MessageListHandler executes an event broadcast history request.
func MessageListHandler(events *eventsdomain.Service) mcp.ToolHandlerFor[MessageListInput, MessageListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MessageListInput) (*mcp.CallToolResult, MessageListResult, error) {
		if strings.TrimSpace(input.EventID) == "" {
			return nil, MessageListResult{}, fmt.Errorf("event_id is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
		defer cancel()

		page, err := events.ListMessages(runCtx, eventsdomain.ListMessagesInput{
			EventID:   input.EventID,
			PageSize:  input.PageSize,
			PageToken: input.PageToken,
		})
		if err != nil {
			return nil, MessageListResult{}, mapDomainError("message list", err)
		}

		result := MessageListResult{
			Messages:      make([]MessageResult, 0, len(page.Messages)),
			NextPageToken: page.NextPageToken,
		}
		for _, message := range page.Messages {
			result.Messages = append(result.Messages, toMessageResult(message))
		}
		return nil, result, nil
	}
}

func toMessageResult(message eventsdomain.Message) MessageResult {
	return MessageResult{
		ID:             message.ID,
		EventID:        message.EventID,
		SenderID:       message.SenderID,
		Subject:        message.Subject,
		Body:           message.Body,
		RecipientCount: message.RecipientCount,
		CreatedAt:      formatTime(message.CreatedAt),
	}
}

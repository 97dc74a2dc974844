package domain

import (
	"context"
	"fmt"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DashboardStatsInput represents the MCP tool input for dashboard statistics.
type DashboardStatsInput struct {
	UserID int64 `json:"userId" jsonschema:"dashboard owner user identifier"`
}

// DashboardStatsTool defines the MCP tool schema for dashboard statistics.
func DashboardStatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dashboard_get_stats",
		Description: "Returns aggregated dashboard statistics for a user",
	}
}

// DashboardStatsHandler serves a dashboard statistics request through the
// injected provider. The provider is called exactly once per request and its
// result and errors pass through unchanged; the handler only rejects invalid
// input before the call and malformed stats after it.
func DashboardStatsHandler(provider statsdomain.Provider) mcp.ToolHandlerFor[DashboardStatsInput, statsdomain.DashboardStats] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DashboardStatsInput) (*mcp.CallToolResult, statsdomain.DashboardStats, error) {
		if provider == nil {
			return nil, statsdomain.DashboardStats{}, fmt.Errorf("stats provider is not configured")
		}
		if input.UserID <= 0 {
			return nil, statsdomain.DashboardStats{}, apperrors.New(apperrors.CodeStatsUserIDInvalid, "userId must be a positive integer")
		}

		stats, err := provider.GetDashboardStats(ctx, input.UserID)
		if err != nil {
			return nil, statsdomain.DashboardStats{}, err
		}
		if err := statsdomain.ValidateDashboardStats(stats); err != nil {
			return nil, statsdomain.DashboardStats{}, err
		}
		return nil, stats, nil
	}
}

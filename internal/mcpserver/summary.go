package mcpserver

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerSummaryTools() {
	s.addTool(mcp.NewTool("get_dashboard_summary",
		mcp.WithDescription("Totals of service requests and issue tickets in one payload. Fails as a whole if either count is unavailable."),
	), s.handleDashboardSummary)
}

// handleDashboardSummary aggregates both count endpoints. The summary is
// all-or-nothing: a failure on either side fails the tool rather than
// reporting a half-filled dashboard.
func (s *Server) handleDashboardSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requests, err := s.requests.Count(ctx)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	issues, err := s.issues.Count(ctx)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	return resultJSON(dashboardSummary{
		ServiceRequests: requests,
		IssueTickets:    issues,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}), nil
}

package mcpserver

import (
	"context"

	"deskmcp/internal/servicedesk"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerIssueTicketTools() {
	s.addTool(mcp.NewTool("list_issue_tickets",
		mcp.WithDescription("List all issue tickets visible to the configured account."),
	), s.handleListIssueTickets)

	s.addTool(mcp.NewTool("list_issue_tickets_filtered",
		mcp.WithDescription("List issue tickets narrowed by ownership flags. Flags left unset fall back to the backend's defaults."),
		mcp.WithBoolean("mine", mcp.Description("Only issue tickets reported by the configured account.")),
		mcp.WithBoolean("history", mcp.Description("Only closed issue tickets.")),
		mcp.WithBoolean("assigned_to_me", mcp.Description("Only issue tickets assigned to the configured account.")),
	), s.handleListIssueTicketsFiltered)

	s.addTool(mcp.NewTool("get_issue_ticket",
		mcp.WithDescription("Fetch a single issue ticket by its numeric id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Issue ticket id.")),
	), s.handleGetIssueTicket)

	s.addTool(mcp.NewTool("list_issue_tickets_by_asset",
		mcp.WithDescription("List the issue tickets raised against one asset."),
		mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset id the tickets refer to.")),
	), s.handleListIssueTicketsByAsset)

	s.addTool(mcp.NewTool("create_issue_ticket",
		mcp.WithDescription("Create a new issue ticket. Returns the stored record with its backend-assigned id."),
		mcp.WithString("summary", mcp.Required(), mcp.Description("Short summary of the incident.")),
		mcp.WithString("reporter", mcp.Required(), mcp.Description("User reporting the incident.")),
		mcp.WithString("description", mcp.Description("Longer free-text description.")),
		mcp.WithString("country", mcp.Description("Country code of the reporter.")),
		mcp.WithNumber("category_id", mcp.Description("Category id.")),
		mcp.WithNumber("sub_category_id", mcp.Description("Sub-category id.")),
		mcp.WithNumber("asset_id", mcp.Description("Asset the incident refers to.")),
		mcp.WithString("cost_center", mcp.Description("Cost center to bill.")),
		mcp.WithString("severity", mcp.Description("Severity as named by the backend.")),
	), s.handleCreateIssueTicket)

	s.addTool(mcp.NewTool("update_issue_ticket",
		mcp.WithDescription("Update fields of an existing issue ticket. Omitted fields are left untouched."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Issue ticket id.")),
		mcp.WithString("summary", mcp.Description("New summary.")),
		mcp.WithString("description", mcp.Description("New description.")),
		mcp.WithString("country", mcp.Description("New country code.")),
		mcp.WithNumber("category_id", mcp.Description("New category id.")),
		mcp.WithNumber("sub_category_id", mcp.Description("New sub-category id.")),
		mcp.WithNumber("asset_id", mcp.Description("New asset id.")),
		mcp.WithString("cost_center", mcp.Description("New cost center.")),
		mcp.WithString("severity", mcp.Description("New severity.")),
		mcp.WithString("status", mcp.Description("New status as named by the backend.")),
		mcp.WithString("priority", mcp.Description("New priority as named by the backend.")),
	), s.handleUpdateIssueTicket)

	s.addTool(mcp.NewTool("close_issue_ticket",
		mcp.WithDescription("Close an issue ticket with a resolution text."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Issue ticket id.")),
		mcp.WithString("resolution", mcp.Required(), mcp.Description("How the incident was resolved.")),
		mcp.WithString("notes", mcp.Description("Optional closing notes.")),
	), s.handleCloseIssueTicket)

	s.addTool(mcp.NewTool("assign_issue_ticket",
		mcp.WithDescription("Assign an issue ticket to an agent."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Issue ticket id.")),
		mcp.WithString("assignee", mcp.Required(), mcp.Description("Agent to assign the ticket to.")),
		mcp.WithString("notes", mcp.Description("Optional handover notes.")),
	), s.handleAssignIssueTicket)

	s.addTool(mcp.NewTool("set_issue_ticket_priority",
		mcp.WithDescription("Change the priority of an issue ticket. The backend requires a reason for the audit trail."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Issue ticket id.")),
		mcp.WithString("priority", mcp.Required(), mcp.Description("New priority as named by the backend.")),
		mcp.WithString("reason", mcp.Required(), mcp.Description("Why the priority changes.")),
	), s.handleSetIssueTicketPriority)

	s.addTool(mcp.NewTool("count_issue_tickets",
		mcp.WithDescription("Count all issue tickets."),
	), s.handleCountIssueTickets)

	s.addTool(mcp.NewTool("search_issue_tickets",
		mcp.WithDescription("Free-text search over issue tickets, optionally refined by status, priority or assignee."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search terms.")),
		mcp.WithString("status", mcp.Description("Restrict to one status.")),
		mcp.WithString("priority", mcp.Description("Restrict to one priority.")),
		mcp.WithString("assignee", mcp.Description("Restrict to one assignee.")),
	), s.handleSearchIssueTickets)

	s.addTool(mcp.NewTool("list_issue_tickets_by_status",
		mcp.WithDescription("List the issue tickets currently in one status."),
		mcp.WithString("status", mcp.Required(), mcp.Description("Status as named by the backend.")),
	), s.handleListIssueTicketsByStatus)

	s.addTool(mcp.NewTool("list_issue_tickets_by_priority",
		mcp.WithDescription("List the issue tickets at one priority."),
		mcp.WithString("priority", mcp.Required(), mcp.Description("Priority as named by the backend.")),
	), s.handleListIssueTicketsByPriority)
}

func (s *Server) handleListIssueTickets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.issues.List(ctx)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleListIssueTicketsFiltered(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := servicedesk.ListFilter{
		Mine:         req.GetBool("mine", false),
		History:      req.GetBool("history", false),
		AssignedToMe: req.GetBool("assigned_to_me", false),
	}

	items, err := s.issues.ListFiltered(ctx, filter)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleGetIssueTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	ticket, err := s.issues.Get(ctx, id)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	if ticket == nil {
		return errorResult("Issue ticket not found"), nil
	}
	return resultJSON(ticket), nil
}

func (s *Server) handleListIssueTicketsByAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := req.RequireInt("asset_id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	items, err := s.issues.ListByAsset(ctx, assetID)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleCreateIssueTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := requireString(req, "summary")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	reporter, err := requireString(req, "reporter")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	input := servicedesk.CreateIssueTicketInput{
		Summary:       summary,
		Reporter:      reporter,
		Description:   req.GetString("description", ""),
		Country:       req.GetString("country", ""),
		CategoryID:    req.GetInt("category_id", 0),
		SubCategoryID: req.GetInt("sub_category_id", 0),
		AssetID:       req.GetInt("asset_id", 0),
		CostCenter:    req.GetString("cost_center", ""),
		Severity:      req.GetString("severity", ""),
	}

	ticket, err := s.issues.Create(ctx, input)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(ticket), nil
}

func (s *Server) handleUpdateIssueTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	input := servicedesk.UpdateIssueTicketInput{
		Summary:       req.GetString("summary", ""),
		Description:   req.GetString("description", ""),
		Country:       req.GetString("country", ""),
		CategoryID:    req.GetInt("category_id", 0),
		SubCategoryID: req.GetInt("sub_category_id", 0),
		AssetID:       req.GetInt("asset_id", 0),
		CostCenter:    req.GetString("cost_center", ""),
		Severity:      req.GetString("severity", ""),
		Status:        req.GetString("status", ""),
		Priority:      req.GetString("priority", ""),
	}

	ticket, err := s.issues.Update(ctx, id, input)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(ticket), nil
}

func (s *Server) handleCloseIssueTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	resolution, err := requireString(req, "resolution")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	ticket, err := s.issues.Close(ctx, id, servicedesk.CloseInput{
		Resolution: resolution,
		Notes:      req.GetString("notes", ""),
	})
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(ticket), nil
}

func (s *Server) handleAssignIssueTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	assignee, err := requireString(req, "assignee")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	ticket, err := s.issues.Assign(ctx, id, servicedesk.AssignInput{
		Assignee: assignee,
		Notes:    req.GetString("notes", ""),
	})
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(ticket), nil
}

func (s *Server) handleSetIssueTicketPriority(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	priority, err := requireString(req, "priority")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	reason, err := requireString(req, "reason")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	ticket, err := s.issues.ChangePriority(ctx, id, servicedesk.PriorityInput{
		Priority: priority,
		Reason:   reason,
	})
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(ticket), nil
}

func (s *Server) handleCountIssueTickets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := s.issues.Count(ctx)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(countPayload{Count: n}), nil
}

func (s *Server) handleSearchIssueTickets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := requireString(req, "query")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	filter := servicedesk.SearchFilter{
		Status:   req.GetString("status", ""),
		Priority: req.GetString("priority", ""),
		Assignee: req.GetString("assignee", ""),
	}

	items, err := s.issues.Search(ctx, query, filter)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleListIssueTicketsByStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := requireString(req, "status")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	items, err := s.issues.ListByStatus(ctx, status)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleListIssueTicketsByPriority(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	priority, err := requireString(req, "priority")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	items, err := s.issues.ListByPriority(ctx, priority)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

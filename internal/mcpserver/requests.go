package mcpserver

import (
	"context"

	"deskmcp/internal/servicedesk"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerServiceRequestTools() {
	s.addTool(mcp.NewTool("list_service_requests",
		mcp.WithDescription("List all service requests visible to the configured account."),
	), s.handleListServiceRequests)

	s.addTool(mcp.NewTool("list_service_requests_filtered",
		mcp.WithDescription("List service requests narrowed by ownership flags. Flags left unset fall back to the backend's defaults."),
		mcp.WithBoolean("mine", mcp.Description("Only service requests opened by the configured account.")),
		mcp.WithBoolean("history", mcp.Description("Only closed service requests.")),
		mcp.WithBoolean("assigned_to_me", mcp.Description("Only service requests assigned to the configured account.")),
	), s.handleListServiceRequestsFiltered)

	s.addTool(mcp.NewTool("get_service_request",
		mcp.WithDescription("Fetch a single service request by its numeric id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Service request id.")),
	), s.handleGetServiceRequest)

	s.addTool(mcp.NewTool("list_service_requests_by_asset",
		mcp.WithDescription("List the service requests raised against one asset."),
		mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset id the requests refer to.")),
	), s.handleListServiceRequestsByAsset)

	s.addTool(mcp.NewTool("create_service_request",
		mcp.WithDescription("Create a new service request. Returns the stored record with its backend-assigned id."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Short title of the request.")),
		mcp.WithString("requester", mcp.Required(), mcp.Description("User the request is raised for.")),
		mcp.WithString("description", mcp.Description("Longer free-text description.")),
		mcp.WithString("country", mcp.Description("Country code of the requester.")),
		mcp.WithNumber("catalogue_id", mcp.Description("Catalogue entry this request is based on.")),
		mcp.WithNumber("category_id", mcp.Description("Category id.")),
		mcp.WithNumber("sub_category_id", mcp.Description("Sub-category id.")),
		mcp.WithNumber("asset_id", mcp.Description("Asset the request refers to.")),
		mcp.WithString("cost_center", mcp.Description("Cost center to bill.")),
		mcp.WithString("severity", mcp.Description("Severity as named by the backend.")),
	), s.handleCreateServiceRequest)

	s.addTool(mcp.NewTool("update_service_request",
		mcp.WithDescription("Update fields of an existing service request. Omitted fields are left untouched."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Service request id.")),
		mcp.WithString("title", mcp.Description("New title.")),
		mcp.WithString("description", mcp.Description("New description.")),
		mcp.WithString("country", mcp.Description("New country code.")),
		mcp.WithNumber("catalogue_id", mcp.Description("New catalogue entry id.")),
		mcp.WithNumber("category_id", mcp.Description("New category id.")),
		mcp.WithNumber("sub_category_id", mcp.Description("New sub-category id.")),
		mcp.WithNumber("asset_id", mcp.Description("New asset id.")),
		mcp.WithString("cost_center", mcp.Description("New cost center.")),
		mcp.WithString("severity", mcp.Description("New severity.")),
		mcp.WithString("status", mcp.Description("New status as named by the backend.")),
		mcp.WithString("priority", mcp.Description("New priority as named by the backend.")),
	), s.handleUpdateServiceRequest)

	s.addTool(mcp.NewTool("close_service_request",
		mcp.WithDescription("Close a service request with a resolution text."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Service request id.")),
		mcp.WithString("resolution", mcp.Required(), mcp.Description("How the request was resolved.")),
		mcp.WithString("notes", mcp.Description("Optional closing notes.")),
	), s.handleCloseServiceRequest)

	s.addTool(mcp.NewTool("assign_service_request",
		mcp.WithDescription("Assign a service request to an agent."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Service request id.")),
		mcp.WithString("assignee", mcp.Required(), mcp.Description("Agent to assign the request to.")),
		mcp.WithString("notes", mcp.Description("Optional handover notes.")),
	), s.handleAssignServiceRequest)

	s.addTool(mcp.NewTool("set_service_request_priority",
		mcp.WithDescription("Change the priority of a service request. The backend requires a reason for the audit trail."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Service request id.")),
		mcp.WithString("priority", mcp.Required(), mcp.Description("New priority as named by the backend.")),
		mcp.WithString("reason", mcp.Required(), mcp.Description("Why the priority changes.")),
	), s.handleSetServiceRequestPriority)

	s.addTool(mcp.NewTool("count_service_requests",
		mcp.WithDescription("Count all service requests."),
	), s.handleCountServiceRequests)

	s.addTool(mcp.NewTool("search_service_requests",
		mcp.WithDescription("Free-text search over service requests, optionally refined by status, priority or assignee."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search terms.")),
		mcp.WithString("status", mcp.Description("Restrict to one status.")),
		mcp.WithString("priority", mcp.Description("Restrict to one priority.")),
		mcp.WithString("assignee", mcp.Description("Restrict to one assignee.")),
	), s.handleSearchServiceRequests)

	s.addTool(mcp.NewTool("list_service_requests_by_status",
		mcp.WithDescription("List the service requests currently in one status."),
		mcp.WithString("status", mcp.Required(), mcp.Description("Status as named by the backend.")),
	), s.handleListServiceRequestsByStatus)

	s.addTool(mcp.NewTool("list_service_requests_by_priority",
		mcp.WithDescription("List the service requests at one priority."),
		mcp.WithString("priority", mcp.Required(), mcp.Description("Priority as named by the backend.")),
	), s.handleListServiceRequestsByPriority)
}

func (s *Server) handleListServiceRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.requests.List(ctx)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleListServiceRequestsFiltered(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := servicedesk.ListFilter{
		Mine:         req.GetBool("mine", false),
		History:      req.GetBool("history", false),
		AssignedToMe: req.GetBool("assigned_to_me", false),
	}

	items, err := s.requests.ListFiltered(ctx, filter)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleGetServiceRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sr, err := s.requests.Get(ctx, id)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	if sr == nil {
		return errorResult("Service request not found"), nil
	}
	return resultJSON(sr), nil
}

func (s *Server) handleListServiceRequestsByAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := req.RequireInt("asset_id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	items, err := s.requests.ListByAsset(ctx, assetID)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleCreateServiceRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := requireString(req, "title")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	requester, err := requireString(req, "requester")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	input := servicedesk.CreateServiceRequestInput{
		Title:         title,
		Requester:     requester,
		Description:   req.GetString("description", ""),
		Country:       req.GetString("country", ""),
		CatalogueID:   req.GetInt("catalogue_id", 0),
		CategoryID:    req.GetInt("category_id", 0),
		SubCategoryID: req.GetInt("sub_category_id", 0),
		AssetID:       req.GetInt("asset_id", 0),
		CostCenter:    req.GetString("cost_center", ""),
		Severity:      req.GetString("severity", ""),
	}

	sr, err := s.requests.Create(ctx, input)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(sr), nil
}

func (s *Server) handleUpdateServiceRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	input := servicedesk.UpdateServiceRequestInput{
		Title:         req.GetString("title", ""),
		Description:   req.GetString("description", ""),
		Country:       req.GetString("country", ""),
		CatalogueID:   req.GetInt("catalogue_id", 0),
		CategoryID:    req.GetInt("category_id", 0),
		SubCategoryID: req.GetInt("sub_category_id", 0),
		AssetID:       req.GetInt("asset_id", 0),
		CostCenter:    req.GetString("cost_center", ""),
		Severity:      req.GetString("severity", ""),
		Status:        req.GetString("status", ""),
		Priority:      req.GetString("priority", ""),
	}

	sr, err := s.requests.Update(ctx, id, input)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(sr), nil
}

func (s *Server) handleCloseServiceRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	resolution, err := requireString(req, "resolution")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sr, err := s.requests.Close(ctx, id, servicedesk.CloseInput{
		Resolution: resolution,
		Notes:      req.GetString("notes", ""),
	})
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(sr), nil
}

func (s *Server) handleAssignServiceRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	assignee, err := requireString(req, "assignee")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sr, err := s.requests.Assign(ctx, id, servicedesk.AssignInput{
		Assignee: assignee,
		Notes:    req.GetString("notes", ""),
	})
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(sr), nil
}

func (s *Server) handleSetServiceRequestPriority(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	sr, err := s.requests.ChangePriority(ctx, id, servicedesk.PriorityInput{
		Priority: priority,
		Reason:   reason,
	})
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(sr), nil
}

func (s *Server) handleCountServiceRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := s.requests.Count(ctx)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(countPayload{Count: n}), nil
}

func (s *Server) handleSearchServiceRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := requireString(req, "query")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	filter := servicedesk.SearchFilter{
		Status:   req.GetString("status", ""),
		Priority: req.GetString("priority", ""),
		Assignee: req.GetString("assignee", ""),
	}

	items, err := s.requests.Search(ctx, query, filter)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleListServiceRequestsByStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := requireString(req, "status")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	items, err := s.requests.ListByStatus(ctx, status)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

func (s *Server) handleListServiceRequestsByPriority(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	priority, err := requireString(req, "priority")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	items, err := s.requests.ListByPriority(ctx, priority)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return resultJSON(items), nil
}

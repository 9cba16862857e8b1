package mcpserver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// errorPayload is the uniform failure shape every tool returns.
type errorPayload struct {
	Error string `json:"error"`
}

// countPayload is the rendered shape of the count tools.
type countPayload struct {
	Count int `json:"count"`
}

// dashboardSummary aggregates both backlog counters in one payload.
type dashboardSummary struct {
	ServiceRequests int    `json:"serviceRequests"`
	IssueTickets    int    `json:"issueTickets"`
	GeneratedAt     string `json:"generatedAt"`
}

// resultJSON renders v as the tool's JSON text payload.
func resultJSON(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Sprintf("encoding result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult wraps msg in the {"error": ...} payload. Failures stay
// inside the tool result; nothing crosses the facade as a protocol
// fault.
func errorResult(msg string) *mcp.CallToolResult {
	data, err := json.Marshal(errorPayload{Error: msg})
	if err != nil {
		return mcp.NewToolResultError(`{"error":"encoding failure"}`)
	}
	return mcp.NewToolResultError(string(data))
}

// requireString reads a required string parameter and rejects blank
// values. Presence and non-blankness are the only local validation the
// adapter performs; everything else is the backend's call.
func requireString(req mcp.CallToolRequest, key string) (string, error) {
	v, err := req.RequireString(key)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("parameter %q must not be empty", key)
	}
	return v, nil
}

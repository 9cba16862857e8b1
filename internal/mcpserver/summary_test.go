package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/service-requests/count":
			w.Write([]byte(`{"count":3}`))
		case "/api/v1/issue-tickets/count":
			w.Write([]byte(`{"count":4}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	res, err := s.handleDashboardSummary(context.Background(), callRequest("get_dashboard_summary", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var payload struct {
		ServiceRequests int    `json:"serviceRequests"`
		IssueTickets    int    `json:"issueTickets"`
		GeneratedAt     string `json:"generatedAt"`
	}
	require.NoError(t, json.Unmarshal([]byte(textPayload(t, res)), &payload))
	assert.Equal(t, 3, payload.ServiceRequests)
	assert.Equal(t, 4, payload.IssueTickets)

	_, parseErr := time.Parse(time.RFC3339, payload.GeneratedAt)
	assert.NoError(t, parseErr, "generatedAt must be an RFC 3339 timestamp")
}

func TestDashboardSummaryNoPartialSuccess(t *testing.T) {
	issueCountCalled := false
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/service-requests/count":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/api/v1/issue-tickets/count":
			issueCountCalled = true
			w.Write([]byte(`{"count":4}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	res, err := s.handleDashboardSummary(context.Background(), callRequest("get_dashboard_summary", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	msg := errorMessage(t, res)
	assert.Contains(t, msg, "count service requests")
	assert.Contains(t, msg, "status 503")

	// The healthy side must not leak into the payload as a partial result.
	assert.False(t, issueCountCalled)
	assert.NotContains(t, textPayload(t, res), "issueTickets")
}

func TestDashboardSummaryFailsOnIssueSide(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/service-requests/count":
			w.Write([]byte(`{"count":3}`))
		case "/api/v1/issue-tickets/count":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	res, err := s.handleDashboardSummary(context.Background(), callRequest("get_dashboard_summary", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	msg := errorMessage(t, res)
	assert.Contains(t, msg, "count issue tickets")
	assert.Contains(t, msg, "status 500")
}

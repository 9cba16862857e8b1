// Package servicedesk is the typed REST client for the service-desk
// backend. A single generic client implements every operation and is
// instantiated once for service requests and once for issue tickets,
// which share the same endpoint grammar under different roots.
package servicedesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"deskmcp/internal/config"
)

// resource names one ticket kind's endpoint root and the labels used in
// operation error messages.
type resource struct {
	root     string
	singular string
	plural   string
}

var (
	serviceRequests = resource{
		root:     "/api/v1/service-requests",
		singular: "service request",
		plural:   "service requests",
	}
	issueTickets = resource{
		root:     "/api/v1/issue-tickets",
		singular: "issue ticket",
		plural:   "issue tickets",
	}
)

// Client performs the REST round-trips for one ticket kind. T is the
// record type, C and U the create and update body shapes.
type Client[T, C, U any] struct {
	http    *http.Client
	base    string
	res     resource
	timeout time.Duration
}

func newClient[T, C, U any](cfg config.Config, auth *Authenticator, res resource) *Client[T, C, U] {
	return &Client[T, C, U]{
		http:    auth.Client(),
		base:    cfg.BaseURL,
		res:     res,
		timeout: cfg.Timeout,
	}
}

// List fetches every ticket visible to the configured account.
func (c *Client[T, C, U]) List(ctx context.Context) ([]T, error) {
	return c.listOp(ctx, "list "+c.res.plural, c.res.root, nil)
}

// ListFiltered narrows the listing. Only flags that are set appear in
// the query string, so the backend's defaults apply otherwise.
func (c *Client[T, C, U]) ListFiltered(ctx context.Context, f ListFilter) ([]T, error) {
	q := url.Values{}
	if f.Mine {
		q.Set("mine", "true")
	}
	if f.History {
		q.Set("history", "true")
	}
	if f.AssignedToMe {
		q.Set("assignedToMe", "true")
	}
	return c.listOp(ctx, "list filtered "+c.res.plural, c.res.root, q)
}

// Get fetches a single ticket. A backend 404 is not an error: the
// ticket is reported as absent with a nil record.
func (c *Client[T, C, U]) Get(ctx context.Context, id int) (*T, error) {
	op := "get " + c.res.singular

	status, data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", c.res.root, id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status < 200 || status >= 300 {
		return nil, &RequestError{Op: op, Status: status}
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	return &item, nil
}

// ListByAsset fetches the tickets raised against one asset.
func (c *Client[T, C, U]) ListByAsset(ctx context.Context, assetID int) ([]T, error) {
	op := "list " + c.res.plural + " by asset"
	return c.listOp(ctx, op, fmt.Sprintf("%s/asset/%d", c.res.root, assetID), nil)
}

// Create submits a new ticket and returns the stored record, which
// carries the backend-assigned id and defaults.
func (c *Client[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	return c.mutate(ctx, "create "+c.res.singular, http.MethodPost, c.res.root, in)
}

// Update submits a partial update. Zero-valued fields in the input are
// omitted from the request body entirely.
func (c *Client[T, C, U]) Update(ctx context.Context, id int, in U) (*T, error) {
	return c.mutate(ctx, "update "+c.res.singular, http.MethodPut, fmt.Sprintf("%s/%d", c.res.root, id), in)
}

// Close resolves a ticket with the given resolution text.
func (c *Client[T, C, U]) Close(ctx context.Context, id int, in CloseInput) (*T, error) {
	return c.mutate(ctx, "close "+c.res.singular, http.MethodPost, fmt.Sprintf("%s/%d/close", c.res.root, id), in)
}

// Assign hands a ticket to an agent.
func (c *Client[T, C, U]) Assign(ctx context.Context, id int, in AssignInput) (*T, error) {
	return c.mutate(ctx, "assign "+c.res.singular, http.MethodPost, fmt.Sprintf("%s/%d/assign", c.res.root, id), in)
}

// ChangePriority moves a ticket to a new priority with an audit reason.
func (c *Client[T, C, U]) ChangePriority(ctx context.Context, id int, in PriorityInput) (*T, error) {
	op := "change " + c.res.singular + " priority"
	return c.mutate(ctx, op, http.MethodPost, fmt.Sprintf("%s/%d/priority", c.res.root, id), in)
}

// Count returns the total number of tickets of this kind. A body
// without a recognizable count field yields zero, not an error.
func (c *Client[T, C, U]) Count(ctx context.Context) (int, error) {
	op := "count " + c.res.plural

	status, data, err := c.do(ctx, http.MethodGet, c.res.root+"/count", nil, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if status < 200 || status >= 300 {
		return 0, &RequestError{Op: op, Status: status}
	}

	var out countResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, nil
	}
	return out.Count, nil
}

// Search runs a free-text query, optionally refined by filter fields.
// The query string is percent-encoded; each parameter appears at most
// once.
func (c *Client[T, C, U]) Search(ctx context.Context, query string, f SearchFilter) ([]T, error) {
	q := url.Values{}
	q.Set("q", query)
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if f.Assignee != "" {
		q.Set("assignee", f.Assignee)
	}
	return c.listOp(ctx, "search "+c.res.plural, c.res.root+"/search", q)
}

// ListByStatus fetches every ticket currently in the given status.
func (c *Client[T, C, U]) ListByStatus(ctx context.Context, status string) ([]T, error) {
	op := "list " + c.res.plural + " by status"
	return c.listOp(ctx, op, c.res.root+"/status/"+url.PathEscape(status), nil)
}

// ListByPriority fetches every ticket at the given priority.
func (c *Client[T, C, U]) ListByPriority(ctx context.Context, priority string) ([]T, error) {
	op := "list " + c.res.plural + " by priority"
	return c.listOp(ctx, op, c.res.root+"/priority/"+url.PathEscape(priority), nil)
}

// listOp runs a GET that yields a sequence. The result is never nil:
// empty, null and unparseable bodies all normalize to an empty slice.
func (c *Client[T, C, U]) listOp(ctx context.Context, op, path string, query url.Values) ([]T, error) {
	status, data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if status < 200 || status >= 300 {
		return nil, &RequestError{Op: op, Status: status}
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// mutate runs a write and decodes the updated record. Error statuses
// keep the response body, where the backend explains what it rejected.
func (c *Client[T, C, U]) mutate(ctx context.Context, op, method, path string, body any) (*T, error) {
	status, data, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if status < 200 || status >= 300 {
		return nil, &RequestError{Op: op, Status: status, Body: strings.TrimSpace(string(data))}
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	return &item, nil
}

// do performs one bounded round-trip and returns the status code and
// the fully read body.
func (c *Client[T, C, U]) do(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp.StatusCode, data, nil
}

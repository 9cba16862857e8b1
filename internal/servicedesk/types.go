package servicedesk

// CloseInput is the body for closing a ticket of either kind.
type CloseInput struct {
	Resolution string `json:"resolution"`
	Notes      string `json:"notes,omitempty"`
}

// AssignInput is the body for assigning a ticket to an agent.
type AssignInput struct {
	Assignee string `json:"assignee"`
	Notes    string `json:"notes,omitempty"`
}

// PriorityInput is the body for changing a ticket's priority. The
// backend requires a reason for the audit trail.
type PriorityInput struct {
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// ListFilter narrows a listing to the caller's own tickets, to closed
// history, or to tickets assigned to the caller. Unset flags are not
// sent at all, so the backend applies its defaults.
type ListFilter struct {
	Mine         bool
	History      bool
	AssignedToMe bool
}

// SearchFilter refines a free-text search. Empty fields are omitted
// from the query string.
type SearchFilter struct {
	Status   string
	Priority string
	Assignee string
}

// countResponse is the backend's shape for count endpoints. A missing
// field decodes to zero.
type countResponse struct {
	Count int `json:"count"`
}

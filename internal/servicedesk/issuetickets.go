package servicedesk

import "deskmcp/internal/config"

// IssueTicket is an incident record as the backend returns it. It
// mirrors ServiceRequest except that incidents carry a summary and a
// reporter and are not tied to a catalogue entry.
type IssueTicket struct {
	ID            int    `json:"id"`
	Summary       string `json:"summary"`
	Description   string `json:"description,omitempty"`
	Reporter      string `json:"reporter"`
	Country       string `json:"country,omitempty"`
	CategoryID    int    `json:"categoryId,omitempty"`
	SubCategoryID int    `json:"subCategoryId,omitempty"`
	AssetID       int    `json:"assetId,omitempty"`
	CostCenter    string `json:"costCenter,omitempty"`
	Severity      string `json:"severity,omitempty"`
	Status        string `json:"status,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Assignee      string `json:"assignee,omitempty"`
	EscalatedTo   string `json:"escalatedTo,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// CreateIssueTicketInput is the creation body. Summary and reporter are
// required; optional zero-valued fields never reach the wire.
type CreateIssueTicketInput struct {
	Summary       string `json:"summary"`
	Reporter      string `json:"reporter"`
	Description   string `json:"description,omitempty"`
	Country       string `json:"country,omitempty"`
	CategoryID    int    `json:"categoryId,omitempty"`
	SubCategoryID int    `json:"subCategoryId,omitempty"`
	AssetID       int    `json:"assetId,omitempty"`
	CostCenter    string `json:"costCenter,omitempty"`
	Severity      string `json:"severity,omitempty"`
}

// UpdateIssueTicketInput is the partial-update body. Every field is
// optional; the backend only touches the fields that are present.
type UpdateIssueTicketInput struct {
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Country       string `json:"country,omitempty"`
	CategoryID    int    `json:"categoryId,omitempty"`
	SubCategoryID int    `json:"subCategoryId,omitempty"`
	AssetID       int    `json:"assetId,omitempty"`
	CostCenter    string `json:"costCenter,omitempty"`
	Severity      string `json:"severity,omitempty"`
	Status        string `json:"status,omitempty"`
	Priority      string `json:"priority,omitempty"`
}

// IssueTicketClient is the generic client bound to the issue-ticket
// endpoints.
type IssueTicketClient = Client[IssueTicket, CreateIssueTicketInput, UpdateIssueTicketInput]

// NewIssueTicketClient builds the client for /api/v1/issue-tickets.
func NewIssueTicketClient(cfg config.Config, auth *Authenticator) *IssueTicketClient {
	return newClient[IssueTicket, CreateIssueTicketInput, UpdateIssueTicketInput](cfg, auth, issueTickets)
}

package servicedesk

import "deskmcp/internal/config"

// ServiceRequest is a catalogue-driven request record as the backend
// returns it. Optional fields the backend leaves null are omitted when
// the record is re-rendered as JSON.
type ServiceRequest struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Requester     string `json:"requester"`
	Country       string `json:"country,omitempty"`
	CatalogueID   int    `json:"catalogueId,omitempty"`
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

// CreateServiceRequestInput is the creation body. Title and requester
// are required; optional zero-valued fields never reach the wire.
type CreateServiceRequestInput struct {
	Title         string `json:"title"`
	Requester     string `json:"requester"`
	Description   string `json:"description,omitempty"`
	Country       string `json:"country,omitempty"`
	CatalogueID   int    `json:"catalogueId,omitempty"`
	CategoryID    int    `json:"categoryId,omitempty"`
	SubCategoryID int    `json:"subCategoryId,omitempty"`
	AssetID       int    `json:"assetId,omitempty"`
	CostCenter    string `json:"costCenter,omitempty"`
	Severity      string `json:"severity,omitempty"`
}

// UpdateServiceRequestInput is the partial-update body. Every field is
// optional; the backend only touches the fields that are present.
type UpdateServiceRequestInput struct {
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Country       string `json:"country,omitempty"`
	CatalogueID   int    `json:"catalogueId,omitempty"`
	CategoryID    int    `json:"categoryId,omitempty"`
	SubCategoryID int    `json:"subCategoryId,omitempty"`
	AssetID       int    `json:"assetId,omitempty"`
	CostCenter    string `json:"costCenter,omitempty"`
	Severity      string `json:"severity,omitempty"`
	Status        string `json:"status,omitempty"`
	Priority      string `json:"priority,omitempty"`
}

// ServiceRequestClient is the generic client bound to the
// service-request endpoints.
type ServiceRequestClient = Client[ServiceRequest, CreateServiceRequestInput, UpdateServiceRequestInput]

// NewServiceRequestClient builds the client for /api/v1/service-requests.
func NewServiceRequestClient(cfg config.Config, auth *Authenticator) *ServiceRequestClient {
	return newClient[ServiceRequest, CreateServiceRequestInput, UpdateServiceRequestInput](cfg, auth, serviceRequests)
}

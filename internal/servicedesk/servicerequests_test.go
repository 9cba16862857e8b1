package servicedesk

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceRequestMinimalBody(t *testing.T) {
	var gotBody map[string]any
	client := newRequestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"title":"VPN access","requester":"ana","status":"open","priority":"medium"}`))
	})

	_, err := client.Create(context.Background(), CreateServiceRequestInput{
		Title:     "VPN access",
		Requester: "ana",
	})
	require.NoError(t, err)

	// Only the required keys reach the wire.
	assert.Equal(t, map[string]any{"title": "VPN access", "requester": "ana"}, gotBody)
}

func TestCreateServiceRequestFullBody(t *testing.T) {
	var gotBody map[string]any
	client := newRequestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":2,"title":"New laptop","requester":"bo","status":"open","priority":"medium"}`))
	})

	_, err := client.Create(context.Background(), CreateServiceRequestInput{
		Title:         "New laptop",
		Requester:     "bo",
		Description:   "Dev machine for the data team",
		Country:       "DE",
		CatalogueID:   12,
		CategoryID:    3,
		SubCategoryID: 7,
		AssetID:       314,
		CostCenter:    "CC-4411",
		Severity:      "minor",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dev machine for the data team", gotBody["description"])
	assert.Equal(t, float64(12), gotBody["catalogueId"])
	assert.Equal(t, float64(3), gotBody["categoryId"])
	assert.Equal(t, float64(7), gotBody["subCategoryId"])
	assert.Equal(t, float64(314), gotBody["assetId"])
	assert.Equal(t, "CC-4411", gotBody["costCenter"])
	assert.Equal(t, "minor", gotBody["severity"])
	assert.Equal(t, "DE", gotBody["country"])
}

func TestServiceRequestEndpointRoot(t *testing.T) {
	var gotPath string
	client := newRequestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})

	_, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/service-requests", gotPath)
}

func TestServiceRequestOmitsNullFieldsWhenRendered(t *testing.T) {
	sr := ServiceRequest{
		ID:        3,
		Title:     "Monitor flickers",
		Requester: "ana",
		Status:    "open",
		Priority:  "low",
	}

	data, err := json.Marshal(sr)
	require.NoError(t, err)

	var rendered map[string]any
	require.NoError(t, json.Unmarshal(data, &rendered))

	assert.NotContains(t, rendered, "description")
	assert.NotContains(t, rendered, "assignee")
	assert.NotContains(t, rendered, "escalatedTo")
	assert.NotContains(t, rendered, "catalogueId")
	assert.Contains(t, rendered, "id")
	assert.Contains(t, rendered, "title")
}

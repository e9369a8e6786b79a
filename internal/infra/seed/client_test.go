package seed

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intranet-portal/internal/validator"
)

const testExportURL = "https://cms.example.com/api/export"

func newTestClient() *Client {
	cfg := ClientConfig{
		BaseURL:  "https://cms.example.com",
		Endpoint: "/api/export",
		Timeout:  5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			WaitTime:    10 * time.Millisecond,
			MaxWaitTime: 50 * time.Millisecond,
		},
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	client := NewClient(cfg, validator.New(), zap.NewNop())

	// Route the client's HTTP transport through httpmock
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func exportPayload() map[string]any {
	return map[string]any{
		"users": []map[string]any{
			{"id": "1", "name": "John Doe", "email": "john.doe@company.com", "department": "Engineering"},
		},
		"content": []map[string]any{
			{
				"id":        "c1",
				"title":     "Welcome to the New Intranet",
				"content":   "We are excited to announce the launch",
				"authorId":  "1",
				"createdAt": "2024-01-15",
				"updatedAt": "2024-01-15",
				"tags":      []string{"announcement", "platform"},
				"type":      "announcement",
			},
		},
	}
}

func TestClient_Fetch_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testExportURL,
		httpmock.NewJsonResponderOrPanic(200, exportPayload()))

	users, contents, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, contents, 1)
	assert.Equal(t, "Welcome to the New Intranet", contents[0].Title)
	assert.Same(t, users[0], contents[0].Author)
}

func TestClient_Fetch_ServerError(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testExportURL,
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	_, _, err := client.Fetch(context.Background())
	assert.Error(t, err)

	// Each attempt is retried before failing.
	info := httpmock.GetCallCountInfo()
	assert.GreaterOrEqual(t, info["GET "+testExportURL], 2)
}

func TestClient_Fetch_InvalidPayload(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testExportURL,
		httpmock.NewStringResponder(200, `{"users": [], "content": [`))

	_, _, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_HealthCheck(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()

	httpmock.RegisterResponder("GET", "https://cms.example.com/health",
		httpmock.NewStringResponder(200, `{"status":"healthy"}`))
	assert.NoError(t, client.HealthCheck(context.Background()))

	httpmock.Reset()
	httpmock.RegisterResponder("GET", "https://cms.example.com/health",
		httpmock.NewStringResponder(http.StatusServiceUnavailable, ""))
	assert.Error(t, client.HealthCheck(context.Background()))
}

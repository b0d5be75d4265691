package campaignbackend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backenddomain "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
)

func newTestClient(serverURL string) *BackendClient {
	return &BackendClient{
		Cfg: &config.Config{
			Backend: config.Backend{
				BaseURL:     serverURL,
				AccessToken: "token-de-teste",
			},
		},
		HTTPClient: &http.Client{},
	}
}

func TestEstimateSendsAuthorizationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-de-teste", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/api/meta/estimate", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"estimated_reach":1500,"estimated_cpc":0.42,"confidence":0.8}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	response, err := client.Estimate(context.Background(), &EstimateRequest{Workspace: "ws-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), response.EstimatedReach)
	assert.Equal(t, 0.42, response.EstimatedCPC)
}

func TestHandleResponseExtractsErrorBody(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "campo error",
			status:   400,
			body:     `{"error":"invalid targeting"}`,
			expected: "invalid targeting",
		},
		{
			name:     "campo message",
			status:   403,
			body:     `{"message":"permission denied"}`,
			expected: "permission denied",
		},
		{
			name:     "corpo não estruturado",
			status:   500,
			body:     `upstream exploded`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.Estimate(context.Background(), &EstimateRequest{})

			var backendErr *backenddomain.BackendError
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, tt.status, backendErr.StatusCode)
			assert.Equal(t, tt.expected, backendErr.Message)
			assert.Equal(t, tt.body, backendErr.Raw)
		})
	}
}

func TestEstimateRejectsMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Estimate(context.Background(), &EstimateRequest{})
	assert.Error(t, err)
}

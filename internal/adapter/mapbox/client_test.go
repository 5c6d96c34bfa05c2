package mapbox

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/quake-alert-etl/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken         = "test-token"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

func testClient(baseURL string) *Client {
	return &Client{
		token:      testToken,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    testMetrics(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_ReverseGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Mapbox expects lon,lat in the path.
		assert.Contains(t, r.URL.Path, "100.280000,-0.300000")
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, testToken, r.URL.Query().Get("access_token"))

		resp := response{
			Features: []feature{
				{
					PlaceName: "Bukittinggi, Sumatera Barat, Indonesia",
					Text:      "Bukittinggi",
					Relevance: 0.95,
				},
			},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	result, err := c.ReverseGeocode(context.Background(), -0.3, 100.28)
	require.NoError(t, err)

	assert.Equal(t, "Bukittinggi, Sumatera Barat, Indonesia", result.FormattedAddress)
	assert.Equal(t, "Bukittinggi", result.PlaceName)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestClient_ReverseGeocode_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(response{Features: []feature{}}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	result, err := c.ReverseGeocode(context.Background(), -5.0, 110.0)
	require.NoError(t, err)
	assert.Empty(t, result.FormattedAddress)
	assert.Empty(t, result.PlaceName)
}

func TestClient_ReverseGeocode_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Not Authorized"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.token = "bad-token"

	_, err := c.ReverseGeocode(context.Background(), -0.3, 100.28)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_ReverseGeocode_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}

	_, err := c.ReverseGeocode(context.Background(), -0.3, 100.28)
	require.Error(t, err)
}

func TestClient_ReverseGeocode_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.ReverseGeocode(context.Background(), -0.3, 100.28)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

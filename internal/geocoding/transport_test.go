package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-api/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey        = "test-api-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

const portlandBody = `{
	"status": "OK",
	"results": [{
		"geometry": {"location": {"lat": 45.5162468, "lng": -122.6857963}},
		"address_components": [
			{"types": ["street_number"], "short_name": "1305", "long_name": "1305"},
			{"types": ["postal_code"], "short_name": "97201", "long_name": "97201"}
		]
	}]
}`

func testTransport(baseURL string, timeout time.Duration) *HTTPTransport {
	return NewHTTPTransport(testAPIKey, baseURL, timeout, observability.NewMetricsForTesting())
}

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPTransport_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, testAddress, r.URL.Query().Get("address"))
		assert.Equal(t, testAPIKey, r.URL.Query().Get("key"))

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(portlandBody))
	}))
	defer srv.Close()

	resp, err := testTransport(srv.URL, time.Second).Fetch(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, StatusOK, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "45.5162468", resp.Results[0].Geometry.Location.Lat.String())
	assert.Equal(t, "-122.6857963", resp.Results[0].Geometry.Location.Lng.String())
	assert.Len(t, resp.Results[0].AddressComponents, 2)
}

func TestHTTPTransport_Fetch_ZeroResultsIsNotAnError(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"status": "ZERO_RESULTS", "results": []}`)

	resp, err := testTransport(srv.URL, time.Second).Fetch(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, StatusZeroResults, resp.Status)
	assert.Empty(t, resp.Results)
}

func TestHTTPTransport_Fetch_ProviderErrors(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedStatus  string
		expectedMessage string
	}{
		{
			name:            "request denied",
			body:            `{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "results": []}`,
			expectedStatus:  "REQUEST_DENIED",
			expectedMessage: "The provided API key is invalid.",
		},
		{
			name:           "over quota",
			body:           `{"status": "OVER_QUERY_LIMIT", "results": []}`,
			expectedStatus: "OVER_QUERY_LIMIT",
		},
		{
			name:           "invalid request",
			body:           `{"status": "INVALID_REQUEST", "results": []}`,
			expectedStatus: "INVALID_REQUEST",
		},
		{
			name:           "missing status",
			body:           `{"results": []}`,
			expectedStatus: "UNKNOWN_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, http.StatusOK, tt.body)

			_, err := testTransport(srv.URL, time.Second).Fetch(context.Background(), testAddress)

			var providerErr *ProviderError
			require.ErrorAs(t, err, &providerErr)
			assert.Equal(t, tt.expectedStatus, providerErr.Status)
			assert.Equal(t, tt.expectedMessage, providerErr.Message)
			assert.Equal(t, KindProvider, Kind(err))
		})
	}
}

func TestHTTPTransport_Fetch_HTTPErrorStatus(t *testing.T) {
	srv := jsonServer(t, http.StatusInternalServerError, `{"error": "boom"}`)

	_, err := testTransport(srv.URL, time.Second).Fetch(context.Background(), testAddress)

	var networkErr *NetworkError
	require.ErrorAs(t, err, &networkErr)
	assert.Equal(t, http.StatusInternalServerError, networkErr.StatusCode)
	assert.Equal(t, testAddress, networkErr.Address)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPTransport_Fetch_UndecodableBody(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `<html>not json</html>`)

	_, err := testTransport(srv.URL, time.Second).Fetch(context.Background(), testAddress)

	assert.Equal(t, KindNetwork, Kind(err))
}

func TestHTTPTransport_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	start := time.Now()
	_, err := testTransport(srv.URL, 50*time.Millisecond).Fetch(context.Background(), testAddress)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, testAddress, timeoutErr.Address)
	assert.Less(t, time.Since(start), 200*time.Millisecond, "call should return at the timeout")
}

func TestHTTPTransport_Fetch_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testTransport(srv.URL, time.Second).Fetch(ctx, testAddress)

	assert.Equal(t, KindTimeout, Kind(err))
}

func TestHTTPTransport_Fetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := testTransport(url, time.Second).Fetch(context.Background(), testAddress)

	var networkErr *NetworkError
	require.ErrorAs(t, err, &networkErr)
	assert.Zero(t, networkErr.StatusCode)
}

func TestNewHTTPTransport_DefaultTimeout(t *testing.T) {
	transport := NewHTTPTransport(testAPIKey, "http://example.invalid", 0, observability.NewMetricsForTesting())
	assert.Equal(t, DefaultTimeout, transport.httpClient.Timeout)
}

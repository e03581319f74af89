package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"inventory-api/internal/observability"
)

// Provider statuses that are not errors at the transport level.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"

	statusUnknown = "UNKNOWN_ERROR"
)

// DefaultTimeout bounds a single provider round-trip when none is configured.
const DefaultTimeout = 10 * time.Second

// Response is the Google Maps geocoding payload.
type Response struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Results      []Candidate `json:"results"`
}

type Candidate struct {
	Geometry          Geometry           `json:"geometry"`
	AddressComponents []AddressComponent `json:"address_components"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

// LatLng keeps the provider's number text so no precision is lost to float64.
type LatLng struct {
	Lat json.Number `json:"lat"`
	Lng json.Number `json:"lng"`
}

type AddressComponent struct {
	Types     []string `json:"types"`
	ShortName string   `json:"short_name"`
	LongName  string   `json:"long_name,omitempty"`
}

// HTTPTransport performs single-shot lookups against the provider. It never retries or caches.
type HTTPTransport struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// NewHTTPTransport creates a transport whose every call is bounded by timeout.
func NewHTTPTransport(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
	}
}

// Fetch looks up address. ZERO_RESULTS comes back as a normal, empty response.
func (t *HTTPTransport) Fetch(ctx context.Context, address string) (Response, error) {
	params := url.Values{
		"address": {address},
		"key":     {t.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Response{}, &NetworkError{Address: address, Err: fmt.Errorf("create request: %w", err)}
	}

	start := time.Now()
	defer func() {
		t.metrics.GeocodeAPIDuration.Observe(time.Since(start).Seconds())
	}()

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return Response{}, transportError(address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Response{}, &NetworkError{
			Address:    address,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected HTTP status %d: %s", resp.StatusCode, body),
		}
	}

	var payload Response
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		if isTimeout(err) {
			return Response{}, &TimeoutError{Address: address, Err: err}
		}
		return Response{}, &NetworkError{Address: address, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if payload.Status == "" {
		payload.Status = statusUnknown
	}
	if payload.Status != StatusOK && payload.Status != StatusZeroResults {
		return Response{}, &ProviderError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	return payload, nil
}

func transportError(address string, err error) error {
	if isTimeout(err) {
		return &TimeoutError{Address: address, Err: err}
	}
	return &NetworkError{Address: address, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

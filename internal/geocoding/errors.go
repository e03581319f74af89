package geocoding

import (
	"errors"
	"fmt"
)

// TimeoutError is returned when the provider did not answer within the configured timeout.
type TimeoutError struct {
	Address string
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("geocoding: request timed out for address %q", e.Address)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// NetworkError covers every other transport failure: DNS, refused connections, TLS,
// non-2xx HTTP answers and bodies that are not valid JSON.
type NetworkError struct {
	Address    string
	StatusCode int // HTTP status when a response was received, 0 otherwise
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("geocoding: network error for address %q: %v", e.Address, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProviderError is returned when the provider answered with a status other than
// OK or ZERO_RESULTS, e.g. REQUEST_DENIED or OVER_QUERY_LIMIT.
type ProviderError struct {
	Status  string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("geocoding: provider returned status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("geocoding: provider returned status %s", e.Status)
}

// NoResultsError is returned when the provider found no match for the address.
type NoResultsError struct {
	Address string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("geocoding: no results found for address %q", e.Address)
}

// Error kinds, used as log fields and metric labels.
const (
	KindTimeout   = "timeout"
	KindNetwork   = "network"
	KindProvider  = "provider"
	KindNoResults = "no_results"
	KindUnknown   = "unknown"
)

// Kind classifies err into one of the Kind constants. It returns "" for a nil error.
func Kind(err error) string {
	var (
		timeoutErr   *TimeoutError
		networkErr   *NetworkError
		providerErr  *ProviderError
		noResultsErr *NoResultsError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &timeoutErr):
		return KindTimeout
	case errors.As(err, &networkErr):
		return KindNetwork
	case errors.As(err, &providerErr):
		return KindProvider
	case errors.As(err, &noResultsErr):
		return KindNoResults
	default:
		return KindUnknown
	}
}

// Retryable reports whether retrying the same lookup later may succeed.
func Retryable(err error) bool {
	switch Kind(err) {
	case KindTimeout, KindNetwork:
		return true
	default:
		return false
	}
}

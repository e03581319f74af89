package geocoding

import (
	"context"

	"inventory-api/internal/observability"

	"github.com/rs/zerolog"
)

// Fetcher performs the raw provider lookup for a formatted address.
type Fetcher interface {
	Fetch(ctx context.Context, address string) (Response, error)
}

// Resolver turns a street address into a Result.
type Resolver interface {
	Resolve(ctx context.Context, street, city, postcode string) (Result, error)
}

// Service resolves addresses by formatting them, fetching from the provider and
// parsing the first candidate. It holds no mutable state and is safe for concurrent use.
type Service struct {
	transport Fetcher
	metrics   *observability.Metrics
	logger    zerolog.Logger
}

// NewService creates a geocoding service on top of transport.
func NewService(transport Fetcher, metrics *observability.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		transport: transport,
		metrics:   metrics,
		logger:    logger,
	}
}

// Resolve geocodes the address. Errors from the transport or parser are returned
// unchanged so callers can classify them with Kind.
func (s *Service) Resolve(ctx context.Context, street, city, postcode string) (Result, error) {
	address := FormatAddress(street, city, postcode)

	resp, err := s.transport.Fetch(ctx, address)
	if err != nil {
		s.record(err)
		return Result{}, err
	}

	result, err := ParseResponse(resp, address)
	if err != nil {
		s.record(err)
		return Result{}, err
	}

	s.record(nil)
	s.logger.Debug().Str("address", address).Msg("geocoding request successful")
	return result, nil
}

func (s *Service) record(err error) {
	outcome := "success"
	if err != nil {
		outcome = Kind(err)
	}
	s.metrics.GeocodeRequests.WithLabelValues(outcome).Inc()
}

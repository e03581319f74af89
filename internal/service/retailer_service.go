package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"inventory-api/internal/geocoding"
	"inventory-api/internal/models"
	"inventory-api/internal/observability"

	"github.com/rs/zerolog"
)

// RetailerRepository interface for dependency injection
type RetailerRepository interface {
	ListRetailers(ctx context.Context) ([]models.Retailer, error)
	GetRetailer(ctx context.Context, id int64) (*models.Retailer, error)
	CreateRetailer(ctx context.Context, in models.RetailerInput) (*models.Retailer, error)
	UpdateRetailer(ctx context.Context, id int64, in models.RetailerInput) (*models.Retailer, error)
	UpdateRetailerLocation(ctx context.Context, id int64, loc models.Location) error
	DeleteRetailer(ctx context.Context, id int64) error
	ListSodasByRetailer(ctx context.Context, id int64) ([]models.Soda, error)
}

// Geocoder resolves a street address to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, street, city, postcode string) (geocoding.Result, error)
}

// RetailerService contains the business logic for retailers, including
// geocoding enrichment on creation.
type RetailerService struct {
	repo     RetailerRepository
	geocoder Geocoder
	metrics  *observability.Metrics
	logger   zerolog.Logger
}

// NewRetailerService creates a retailer service. A nil geocoder disables enrichment.
func NewRetailerService(repo RetailerRepository, geocoder Geocoder, metrics *observability.Metrics, logger zerolog.Logger) *RetailerService {
	return &RetailerService{
		repo:     repo,
		geocoder: geocoder,
		metrics:  metrics,
		logger:   logger,
	}
}

// List returns the retailers matching filter, ordered by id.
func (s *RetailerService) List(ctx context.Context, filter RetailerFilter) ([]models.Retailer, error) {
	retailers, err := s.repo.ListRetailers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list retailers: %w", err)
	}
	return FilterRetailers(retailers, filter), nil
}

// Get returns a single retailer.
func (s *RetailerService) Get(ctx context.Context, id int64) (*models.Retailer, error) {
	retailer, err := s.repo.GetRetailer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get retailer %d: %w", id, err)
	}
	return retailer, nil
}

// Create stores a new retailer and then fills in its location from the geocoder.
// Geocoding problems are logged and leave the location unset; they never fail the call.
func (s *RetailerService) Create(ctx context.Context, in models.RetailerInput) (*models.Retailer, error) {
	if err := validateRetailer(in); err != nil {
		return nil, err
	}

	retailer, err := s.repo.CreateRetailer(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create retailer: %w", err)
	}

	s.enrich(ctx, retailer, in.Postcode)
	return retailer, nil
}

// Update replaces the editable fields of a retailer. The address is not re-geocoded.
func (s *RetailerService) Update(ctx context.Context, id int64, in models.RetailerInput) (*models.Retailer, error) {
	if err := validateRetailer(in); err != nil {
		return nil, err
	}

	retailer, err := s.repo.UpdateRetailer(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update retailer %d: %w", id, err)
	}
	return retailer, nil
}

// Delete removes a retailer and its soda associations.
func (s *RetailerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRetailer(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete retailer %d: %w", id, err)
	}
	return nil
}

// Sodas returns the sodas carried by a retailer.
func (s *RetailerService) Sodas(ctx context.Context, id int64) ([]models.Soda, error) {
	sodas, err := s.repo.ListSodasByRetailer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sodas of retailer %d: %w", id, err)
	}
	return sodas, nil
}

// enrich is the second phase of creation. It runs detached from the request's
// cancellation so a client disconnect does not abort the lookup; the geocoder's own
// timeout bounds it.
func (s *RetailerService) enrich(ctx context.Context, retailer *models.Retailer, submitted *int) {
	if s.geocoder == nil {
		s.metrics.Enrichments.WithLabelValues("skipped").Inc()
		return
	}

	ctx = context.WithoutCancel(ctx)

	result, err := s.geocoder.Resolve(ctx, retailer.StreetAddress, retailer.City, postcodeString(submitted))
	if err != nil {
		s.metrics.Enrichments.WithLabelValues("failed").Inc()
		s.logger.Warn().
			Err(err).
			Int64("retailer_id", retailer.ID).
			Str("retailer", retailer.Name).
			Str("kind", geocoding.Kind(err)).
			Msg("geocoding failed, retailer saved without coordinates")
		return
	}

	loc := Reconcile(submitted, &result)
	if err := s.repo.UpdateRetailerLocation(ctx, retailer.ID, loc); err != nil {
		s.metrics.Enrichments.WithLabelValues("failed").Inc()
		s.logger.Error().
			Err(err).
			Int64("retailer_id", retailer.ID).
			Str("retailer", retailer.Name).
			Msg("failed to store geocoded location")
		return
	}

	retailer.Latitude = loc.Latitude
	retailer.Longitude = loc.Longitude
	retailer.Postcode = loc.Postcode
	s.metrics.Enrichments.WithLabelValues("enriched").Inc()
}

// RefreshSummary counts the outcome of a RefreshCoordinates run.
type RefreshSummary struct {
	Total     int
	Updated   int
	Unchanged int
	Failed    int
}

// ErrGeocodingDisabled is returned by RefreshCoordinates when no geocoder is configured.
var ErrGeocodingDisabled = errors.New("service: geocoding is disabled")

// RefreshCoordinates re-geocodes stored retailers and writes back coordinates that
// changed. Without all, only retailers lacking coordinates are considered. Postcodes
// are left as they are.
func (s *RetailerService) RefreshCoordinates(ctx context.Context, all bool) (RefreshSummary, error) {
	var summary RefreshSummary
	if s.geocoder == nil {
		return summary, ErrGeocodingDisabled
	}

	retailers, err := s.repo.ListRetailers(ctx)
	if err != nil {
		return summary, fmt.Errorf("service: failed to list retailers: %w", err)
	}

	for _, r := range retailers {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if !all && r.HasCoordinates() {
			continue
		}
		summary.Total++

		result, err := s.geocoder.Resolve(ctx, r.StreetAddress, r.City, postcodeString(r.Postcode))
		if err != nil {
			summary.Failed++
			s.logger.Warn().
				Err(err).
				Int64("retailer_id", r.ID).
				Str("retailer", r.Name).
				Str("kind", geocoding.Kind(err)).
				Msg("could not geocode retailer")
			continue
		}

		loc := Reconcile(r.Postcode, &result)
		loc.Postcode = copyInt(r.Postcode)
		if r.HasCoordinates() && r.Latitude.Decimal.Equal(loc.Latitude.Decimal) && r.Longitude.Decimal.Equal(loc.Longitude.Decimal) {
			summary.Unchanged++
			continue
		}

		if err := s.repo.UpdateRetailerLocation(ctx, r.ID, loc); err != nil {
			return summary, fmt.Errorf("service: failed to update retailer %d: %w", r.ID, err)
		}
		summary.Updated++
		s.logger.Info().
			Int64("retailer_id", r.ID).
			Str("retailer", r.Name).
			Str("latitude", loc.Latitude.Decimal.String()).
			Str("longitude", loc.Longitude.Decimal.String()).
			Msg("updated retailer coordinates")
	}

	return summary, nil
}

func validateRetailer(in models.RetailerInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name must not be blank", models.ErrInvalidInput)
	case strings.TrimSpace(in.StreetAddress) == "":
		return fmt.Errorf("%w: street_address must not be blank", models.ErrInvalidInput)
	case strings.TrimSpace(in.City) == "":
		return fmt.Errorf("%w: city must not be blank", models.ErrInvalidInput)
	}
	return nil
}

func postcodeString(postcode *int) string {
	if postcode == nil {
		return ""
	}
	return strconv.Itoa(*postcode)
}

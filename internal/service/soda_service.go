package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"inventory-api/internal/models"
)

// SodaRepository interface for dependency injection
type SodaRepository interface {
	ListSodas(ctx context.Context) ([]models.Soda, error)
	GetSoda(ctx context.Context, id int64) (*models.Soda, error)
	CreateSoda(ctx context.Context, in models.SodaInput) (*models.Soda, error)
	UpdateSoda(ctx context.Context, id int64, in models.SodaInput) (*models.Soda, error)
	DeleteSoda(ctx context.Context, id int64) error
	ListRetailersBySoda(ctx context.Context, id int64) ([]models.Retailer, error)
	ImportSodas(ctx context.Context, sodas []models.SodaInput) (int64, error)
}

// SodaService contains the business logic for sodas
type SodaService struct {
	repo SodaRepository
}

// NewSodaService creates a new soda service
func NewSodaService(repo SodaRepository) *SodaService {
	return &SodaService{repo: repo}
}

func (s *SodaService) List(ctx context.Context) ([]models.Soda, error) {
	sodas, err := s.repo.ListSodas(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sodas: %w", err)
	}
	return sodas, nil
}

func (s *SodaService) Get(ctx context.Context, id int64) (*models.Soda, error) {
	soda, err := s.repo.GetSoda(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get soda %d: %w", id, err)
	}
	return soda, nil
}

// Create stores a soda with its abbreviation uppercased.
func (s *SodaService) Create(ctx context.Context, in models.SodaInput) (*models.Soda, error) {
	in, err := normalizeSoda(in)
	if err != nil {
		return nil, err
	}

	soda, err := s.repo.CreateSoda(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create soda: %w", err)
	}
	return soda, nil
}

func (s *SodaService) Update(ctx context.Context, id int64, in models.SodaInput) (*models.Soda, error) {
	in, err := normalizeSoda(in)
	if err != nil {
		return nil, err
	}

	soda, err := s.repo.UpdateSoda(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update soda %d: %w", id, err)
	}
	return soda, nil
}

func (s *SodaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSoda(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete soda %d: %w", id, err)
	}
	return nil
}

// Retailers returns the retailers that carry a soda.
func (s *SodaService) Retailers(ctx context.Context, id int64) ([]models.Retailer, error) {
	retailers, err := s.repo.ListRetailersBySoda(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list retailers of soda %d: %w", id, err)
	}
	return retailers, nil
}

// Import normalizes and stores a batch of sodas. Nothing is written if any entry is invalid.
func (s *SodaService) Import(ctx context.Context, in []models.SodaInput) (int64, error) {
	batch := make([]models.SodaInput, 0, len(in))
	for i, soda := range in {
		soda, err := normalizeSoda(soda)
		if err != nil {
			return 0, fmt.Errorf("soda %d: %w", i+1, err)
		}
		batch = append(batch, soda)
	}

	n, err := s.repo.ImportSodas(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("service: failed to import sodas: %w", err)
	}
	return n, nil
}

func normalizeSoda(in models.SodaInput) (models.SodaInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Abbreviation = strings.ToUpper(strings.TrimSpace(in.Abbreviation))

	if in.Name == "" {
		return in, fmt.Errorf("%w: name must not be blank", models.ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(in.Abbreviation); n < 1 || n > 2 {
		return in, fmt.Errorf("%w: abbreviation must be 1 or 2 characters", models.ErrInvalidInput)
	}
	return in, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/providers"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	"github.com/zatekoja/medibook/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// DefaultCountry fills addresses saved without a country
const DefaultCountry = "United States"

// LocationService manages the clinic address shown on a doctor's profile
type LocationService struct {
	repo repositories.ClinicRepository
	geo  providers.GeolocationProvider
}

// NewLocationService creates a new location service
func NewLocationService(repo repositories.ClinicRepository, geo providers.GeolocationProvider) *LocationService {
	return &LocationService{repo: repo, geo: geo}
}

// SaveClinicAddress validates and stores a clinic address, filling in the map
// link and, when the geocoder knows the place, the coordinates
func (s *LocationService) SaveClinicAddress(ctx context.Context, doctorID string, address entities.Address) (*entities.Address, error) {
	address.Street = strings.TrimSpace(address.Street)
	address.City = strings.TrimSpace(address.City)
	address.State = strings.TrimSpace(address.State)
	address.ZipCode = strings.TrimSpace(address.ZipCode)
	address.Country = strings.TrimSpace(address.Country)
	if address.Country == "" {
		address.Country = DefaultCountry
	}

	var missing []string
	if address.Street == "" {
		missing = append(missing, "street")
	}
	if address.City == "" {
		missing = append(missing, "city")
	}
	if address.State == "" {
		missing = append(missing, "state")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing address fields: " + strings.Join(missing, ", "))
	}

	if address.Coordinates == nil {
		c, err := s.geo.Geocode(ctx, address.FullAddress())
		if err != nil {
			observability.LoggerFromContext(ctx).Debug().Err(err).Str("doctor_id", doctorID).Msg("clinic address not geocoded")
		} else {
			address.Coordinates = c
		}
	}
	if address.GoogleMapsURL == "" {
		address.GoogleMapsURL = s.geo.SearchMapsURL(address.FullAddress())
	}

	if err := s.repo.SaveAddress(ctx, doctorID, &address); err != nil {
		return nil, fmt.Errorf("failed to save clinic address: %w", err)
	}

	observability.LoggerFromContext(ctx).Info().
		Str("doctor_id", doctorID).
		Bool("mapped", address.Coordinates != nil).
		Msg("clinic address saved")

	return &address, nil
}

// ClinicAddress returns the saved clinic address of a doctor
func (s *LocationService) ClinicAddress(ctx context.Context, doctorID string) (*entities.Address, error) {
	return s.repo.GetAddress(ctx, doctorID)
}

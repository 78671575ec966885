package geolocation

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/providers"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
	"github.com/zatekoja/medibook/pkg/geo"
)

type city struct {
	name   string
	coords entities.Coordinates
}

// cities is checked in order; the first name contained in the query wins
var cities = []city{
	{name: "New York", coords: entities.Coordinates{Latitude: 40.7128, Longitude: -74.0060}},
	{name: "Los Angeles", coords: entities.Coordinates{Latitude: 34.0522, Longitude: -118.2437}},
	{name: "Chicago", coords: entities.Coordinates{Latitude: 41.8781, Longitude: -87.6298}},
	{name: "Houston", coords: entities.Coordinates{Latitude: 29.7604, Longitude: -95.3698}},
	{name: "San Francisco", coords: entities.Coordinates{Latitude: 37.7749, Longitude: -122.4194}},
	{name: "Boston", coords: entities.Coordinates{Latitude: 42.3601, Longitude: -71.0589}},
}

// MockGeolocationProvider resolves locations from a fixed city table
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() providers.GeolocationProvider {
	return &MockGeolocationProvider{}
}

// Geocode returns the coordinates of the first known city named in location.
// Unknown locations are not found; no default coordinate is substituted.
func (m *MockGeolocationProvider) Geocode(ctx context.Context, location string) (*entities.Coordinates, error) {
	query := strings.ToLower(location)
	for _, c := range cities {
		if strings.Contains(query, strings.ToLower(c.name)) {
			coords := c.coords
			return &coords, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("no coordinates for location %q; known cities: %s",
		location, strings.Join(KnownCities(), ", ")))
}

// CalculateDistance returns the great-circle distance in miles
func (m *MockGeolocationProvider) CalculateDistance(ctx context.Context, from, to entities.Coordinates) (float64, error) {
	return geo.HaversineMiles(from.Latitude, from.Longitude, to.Latitude, to.Longitude), nil
}

// MapsURL links to a map centred on the coordinates
func (m *MockGeolocationProvider) MapsURL(c entities.Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", c.Latitude, c.Longitude)
}

// SearchMapsURL links to a map search for the address
func (m *MockGeolocationProvider) SearchMapsURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

// KnownCities lists the locations Geocode can resolve
func KnownCities() []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		out = append(out, c.name)
	}
	return out
}

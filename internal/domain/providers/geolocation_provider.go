package providers

import (
	"context"

	"github.com/zatekoja/medibook/internal/domain/entities"
)

// GeolocationProvider defines the interface for geolocation services
type GeolocationProvider interface {
	// Geocode converts a free-text location or address to coordinates
	Geocode(ctx context.Context, location string) (*entities.Coordinates, error)

	// CalculateDistance calculates the distance between two points in miles
	CalculateDistance(ctx context.Context, from, to entities.Coordinates) (float64, error)

	// MapsURL links to a map centred on the coordinates
	MapsURL(c entities.Coordinates) string

	// SearchMapsURL links to a map search for the address
	SearchMapsURL(address string) string
}

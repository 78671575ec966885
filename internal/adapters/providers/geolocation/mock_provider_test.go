package geolocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/medibook/internal/domain/entities"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

func TestMockGeolocationProvider_Geocode(t *testing.T) {
	provider := NewMockGeolocationProvider()
	ctx := context.Background()

	tests := []struct {
		location string
		lat, lng float64
	}{
		{location: "New York, NY", lat: 40.7128, lng: -74.0060},
		{location: "los angeles, ca", lat: 34.0522, lng: -118.2437},
		{location: "147 Mental Health Center, Boston, MA 02101", lat: 42.3601, lng: -71.0589},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			coords, err := provider.Geocode(ctx, tt.location)
			require.NoError(t, err)
			assert.Equal(t, tt.lat, coords.Latitude)
			assert.Equal(t, tt.lng, coords.Longitude)
		})
	}

	t.Run("unknown location", func(t *testing.T) {
		coords, err := provider.Geocode(ctx, "Lagos")
		assert.Nil(t, coords)
		assert.True(t, apperrors.IsNotFound(err))
		assert.ErrorContains(t, err, "known cities: New York, Los Angeles, Chicago")
	})
}

func TestMockGeolocationProvider_CalculateDistance(t *testing.T) {
	provider := NewMockGeolocationProvider()

	ny := entities.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	la := entities.Coordinates{Latitude: 34.0522, Longitude: -118.2437}

	d, err := provider.CalculateDistance(context.Background(), ny, la)
	require.NoError(t, err)
	assert.InDelta(t, 2445.7, d, 1.0)
}

func TestMockGeolocationProvider_URLs(t *testing.T) {
	provider := NewMockGeolocationProvider()

	assert.Equal(t, "https://www.google.com/maps?q=40.7589,-73.9851",
		provider.MapsURL(entities.Coordinates{Latitude: 40.7589, Longitude: -73.9851}))
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=1+Main+St%2C+Boston%2C+MA",
		provider.SearchMapsURL("1 Main St, Boston, MA"))
}

func TestKnownCities(t *testing.T) {
	assert.Equal(t, []string{"New York", "Los Angeles", "Chicago", "Houston", "San Francisco", "Boston"}, KnownCities())
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/medibook/internal/adapters/fixtures"
	"github.com/zatekoja/medibook/internal/adapters/providers/geolocation"
	"github.com/zatekoja/medibook/internal/application/services"
	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/query/engine"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

func newSearchService() *services.DoctorSearchService {
	return services.NewDoctorSearchService(fixtures.NewDefaultDoctorStore(), geolocation.NewMockGeolocationProvider(), nil)
}

func doctorIDs(doctors []*entities.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.ID)
	}
	return out
}

func distanceIDs(results []engine.DoctorDistance) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Doctor.ID)
	}
	return out
}

func TestDoctorSearchService_Search(t *testing.T) {
	ctx := context.Background()
	service := newSearchService()

	t.Run("default criteria lists everyone by rating", func(t *testing.T) {
		result, err := service.Search(ctx, entities.DefaultFilterCriteria())

		require.NoError(t, err)
		assert.Equal(t, []string{"2", "5", "1", "6", "3", "4"}, doctorIDs(result.Doctors))
		assert.Equal(t, 6, result.Total)
		assert.Equal(t, 0, result.ActiveFilters)
		assert.Len(t, result.Facets.Specialties, 6)
		assert.Contains(t, result.Facets.Locations, "Boston, MA")
		assert.Contains(t, result.Facets.Slots, "17:30")
	})

	t.Run("filters count and narrow", func(t *testing.T) {
		criteria := entities.DefaultFilterCriteria()
		criteria.SearchTerm = "ca"
		criteria.MaxFees = 160
		criteria.SortBy = entities.SortByFees
		criteria.SortOrder = entities.SortAscending

		result, err := service.Search(ctx, criteria)

		require.NoError(t, err)
		// "ca" hits Cardiology, Chicago and both CA locations; fees drop San Francisco
		assert.Equal(t, []string{"3", "2", "1"}, doctorIDs(result.Doctors))
		assert.Equal(t, 2, result.ActiveFilters)
		assert.Equal(t, 6, result.Total)
	})

	t.Run("reversed range is normalized in the result", func(t *testing.T) {
		criteria := entities.DefaultFilterCriteria()
		criteria.MinFees, criteria.MaxFees = 150, 100

		result, err := service.Search(ctx, criteria)

		require.NoError(t, err)
		assert.Equal(t, 100.0, result.Criteria.MinFees)
		assert.Equal(t, 150.0, result.Criteria.MaxFees)
		assert.ElementsMatch(t, []string{"1", "2", "3"}, doctorIDs(result.Doctors))
	})
}

func TestDoctorSearchService_Search_RepositoryError(t *testing.T) {
	repo := new(MockDoctorRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("unavailable"))

	service := services.NewDoctorSearchService(repo, nil, nil)
	result, err := service.Search(context.Background(), entities.DefaultFilterCriteria())

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to list doctors")
	repo.AssertExpectations(t)
}

func TestDoctorSearchService_Nearby(t *testing.T) {
	ctx := context.Background()
	service := newSearchService()

	t.Run("without origin every filtered doctor passes", func(t *testing.T) {
		result, err := service.Nearby(ctx, entities.DefaultFilterCriteria(), nil, 10)

		require.NoError(t, err)
		assert.False(t, result.Located)
		assert.Equal(t, []string{"2", "5", "1", "6", "3", "4"}, distanceIDs(result.Doctors))
	})

	t.Run("radius around midtown", func(t *testing.T) {
		origin := &entities.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
		result, err := service.Nearby(ctx, entities.DefaultFilterCriteria(), origin, 10)

		require.NoError(t, err)
		assert.True(t, result.Located)
		require.Equal(t, []string{"1"}, distanceIDs(result.Doctors))
		assert.Greater(t, result.Doctors[0].Miles, 0.0)
		assert.Less(t, result.Doctors[0].Miles, 10.0)
	})

	t.Run("wider radius is nearest first", func(t *testing.T) {
		origin := &entities.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
		result, err := service.Nearby(ctx, entities.DefaultFilterCriteria(), origin, 1000)

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "6", "3"}, distanceIDs(result.Doctors))
	})

	t.Run("criteria still apply", func(t *testing.T) {
		criteria := entities.DefaultFilterCriteria()
		criteria.Specialties = []string{"Psychiatry"}
		origin := &entities.Coordinates{Latitude: 40.7128, Longitude: -74.0060}

		result, err := service.Nearby(ctx, criteria, origin, 1000)

		require.NoError(t, err)
		assert.Equal(t, []string{"6"}, distanceIDs(result.Doctors))
		assert.Equal(t, 1, result.ActiveFilters)
	})
}

func TestDoctorSearchService_Nearby_GeocodesUnmappedDoctors(t *testing.T) {
	doctors := []*entities.Doctor{
		{ID: "a", Name: "Dr. Mapped", Location: "Chicago, IL", Fees: 100, Experience: 5, Address: &entities.Address{
			Coordinates: &entities.Coordinates{Latitude: 41.88, Longitude: -87.63},
		}},
		{ID: "b", Name: "Dr. Listed", Location: "Chicago, IL", Fees: 100, Experience: 5},
		{ID: "c", Name: "Dr. Nowhere", Location: "Springfield", Fees: 100, Experience: 5},
	}
	service := services.NewDoctorSearchService(fixtures.NewDoctorStore(doctors), geolocation.NewMockGeolocationProvider(), nil)

	result, err := service.NearbyLocation(context.Background(), entities.DefaultFilterCriteria(), "Chicago", 5)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, distanceIDs(result.Doctors))
}

func TestDoctorSearchService_NearbyLocation(t *testing.T) {
	ctx := context.Background()
	service := newSearchService()

	t.Run("known city", func(t *testing.T) {
		result, err := service.NearbyLocation(ctx, entities.DefaultFilterCriteria(), "Boston, MA", 50)

		require.NoError(t, err)
		assert.Equal(t, []string{"6"}, distanceIDs(result.Doctors))
		assert.Equal(t, 0.0, result.Doctors[0].Miles)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := service.NearbyLocation(ctx, entities.DefaultFilterCriteria(), "Atlantis", 50)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("no geocoder", func(t *testing.T) {
		bare := services.NewDoctorSearchService(fixtures.NewDefaultDoctorStore(), nil, nil)
		_, err := bare.NearbyLocation(ctx, entities.DefaultFilterCriteria(), "Boston", 50)
		assert.Error(t, err)
	})
}

func TestDoctorSearchService_SpecialtyCounts(t *testing.T) {
	counts, err := newSearchService().SpecialtyCounts(context.Background())

	require.NoError(t, err)
	assert.Len(t, counts, 6)
	assert.Equal(t, 1, counts["Neurology"])
}

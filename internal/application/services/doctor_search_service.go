package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/providers"
	"github.com/zatekoja/medibook/internal/domain/repositories"
	"github.com/zatekoja/medibook/internal/infrastructure/observability"
	"github.com/zatekoja/medibook/internal/query/engine"
)

// Facets lists the values offered by the filter panel
type Facets struct {
	Specialties []string `json:"specialties"`
	Locations   []string `json:"locations"`
	Slots       []string `json:"slots"`
}

// SearchResult is the list view of a search
type SearchResult struct {
	Doctors       []*entities.Doctor      `json:"doctors"`
	Total         int                     `json:"total"`
	ActiveFilters int                     `json:"active_filters"`
	Criteria      entities.FilterCriteria `json:"criteria"`
	Facets        Facets                  `json:"facets"`
}

// NearbyResult is the map view of a search. Located is false when no origin
// was known, in which case every filtered doctor is listed without a distance.
type NearbyResult struct {
	Origin        *entities.Coordinates   `json:"origin,omitempty"`
	RadiusMiles   float64                 `json:"radius_miles"`
	Located       bool                    `json:"located"`
	Doctors       []engine.DoctorDistance `json:"doctors"`
	ActiveFilters int                     `json:"active_filters"`
}

// DoctorSearchService runs searches over the doctor directory
type DoctorSearchService struct {
	doctorRepo repositories.DoctorRepository
	geo        providers.GeolocationProvider
	metrics    *observability.Metrics
}

// NewDoctorSearchService creates a new doctor search service. geo and metrics may be nil.
func NewDoctorSearchService(doctorRepo repositories.DoctorRepository, geo providers.GeolocationProvider, metrics *observability.Metrics) *DoctorSearchService {
	return &DoctorSearchService{
		doctorRepo: doctorRepo,
		geo:        geo,
		metrics:    metrics,
	}
}

// Search filters and sorts the directory
func (s *DoctorSearchService) Search(ctx context.Context, criteria entities.FilterCriteria) (*SearchResult, error) {
	ctx, span := observability.StartSpan(ctx, "DoctorSearchService.Search")
	defer span.End()
	start := time.Now()

	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	criteria = criteria.Normalize()
	result := &SearchResult{
		Doctors:       engine.Search(doctors, criteria),
		Total:         len(doctors),
		ActiveFilters: engine.CountActiveFilters(criteria, criteria.SearchTerm),
		Criteria:      criteria,
		Facets: Facets{
			Specialties: engine.Specialties(doctors),
			Locations:   engine.Locations(doctors),
			Slots:       engine.Slots(doctors),
		},
	}

	observability.SetSpanAttributes(span,
		attribute.String("search.term", criteria.SearchTerm),
		attribute.Int("search.active_filters", result.ActiveFilters),
		attribute.Int("search.results", len(result.Doctors)),
	)
	observability.RecordSearchMetric(ctx, s.metrics, "list", len(result.Doctors), time.Since(start))
	observability.LoggerFromContext(ctx).Debug().
		Int("results", len(result.Doctors)).
		Int("active_filters", result.ActiveFilters).
		Msg("doctor search")

	return result, nil
}

// Nearby filters the directory and keeps doctors within radiusMiles of origin,
// nearest first. Without an origin the criteria ordering is kept.
func (s *DoctorSearchService) Nearby(ctx context.Context, criteria entities.FilterCriteria, origin *entities.Coordinates, radiusMiles float64) (*NearbyResult, error) {
	ctx, span := observability.StartSpan(ctx, "DoctorSearchService.Nearby")
	defer span.End()
	start := time.Now()

	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	criteria = criteria.Normalize()
	filtered := engine.Search(doctors, criteria)

	result := &NearbyResult{
		Origin:        origin,
		RadiusMiles:   radiusMiles,
		Located:       origin != nil,
		ActiveFilters: engine.CountActiveFilters(criteria, criteria.SearchTerm),
	}

	if origin == nil {
		result.Doctors = make([]engine.DoctorDistance, 0, len(filtered))
		for _, d := range engine.DistanceFilter(filtered, nil, radiusMiles, nil) {
			result.Doctors = append(result.Doctors, engine.DoctorDistance{Doctor: d})
		}
	} else {
		result.Doctors = engine.Nearby(filtered, *origin, radiusMiles, s.resolver(ctx))
		observability.SetSpanAttributes(span,
			attribute.Float64("search.origin.lat", origin.Latitude),
			attribute.Float64("search.origin.lng", origin.Longitude),
			attribute.Float64("search.radius_miles", radiusMiles),
		)
	}

	observability.RecordSearchMetric(ctx, s.metrics, "map", len(result.Doctors), time.Since(start))
	observability.LoggerFromContext(ctx).Debug().
		Bool("located", result.Located).
		Float64("radius_miles", radiusMiles).
		Int("results", len(result.Doctors)).
		Msg("nearby search")

	return result, nil
}

// NearbyLocation geocodes a place name and runs Nearby from it
func (s *DoctorSearchService) NearbyLocation(ctx context.Context, criteria entities.FilterCriteria, location string, radiusMiles float64) (*NearbyResult, error) {
	if s.geo == nil {
		return nil, fmt.Errorf("geolocation provider is not configured")
	}
	origin, err := s.geo.Geocode(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %q: %w", location, err)
	}
	return s.Nearby(ctx, criteria, origin, radiusMiles)
}

// SpecialtyCounts maps each speciality to its number of doctors
func (s *DoctorSearchService) SpecialtyCounts(ctx context.Context) (map[string]int, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return engine.SpecialtyCounts(doctors), nil
}

// resolver prefers explicit clinic coordinates and falls back to geocoding
// the listed location
func (s *DoctorSearchService) resolver(ctx context.Context) engine.CoordinateResolver {
	if s.geo == nil {
		return engine.AddressResolver
	}
	return engine.NewCoordinateResolver(func(location string) (entities.Coordinates, bool) {
		c, err := s.geo.Geocode(ctx, location)
		if err != nil || c == nil {
			return entities.Coordinates{}, false
		}
		return *c, true
	})
}

package engine

import (
	"sort"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/pkg/geo"
)

// CoordinateResolver finds the coordinate of a doctor's practice
type CoordinateResolver interface {
	Resolve(d *entities.Doctor) (entities.Coordinates, bool)
}

// ResolverFunc adapts a function to CoordinateResolver
type ResolverFunc func(d *entities.Doctor) (entities.Coordinates, bool)

// Resolve calls f(d)
func (f ResolverFunc) Resolve(d *entities.Doctor) (entities.Coordinates, bool) {
	return f(d)
}

// AddressResolver resolves only explicit address coordinates
var AddressResolver CoordinateResolver = ResolverFunc(func(d *entities.Doctor) (entities.Coordinates, bool) {
	return d.Coordinates()
})

// NewCoordinateResolver prefers a doctor's explicit address coordinates and
// falls back to looking up the free-text location. A nil lookup disables the
// fallback.
func NewCoordinateResolver(lookup func(location string) (entities.Coordinates, bool)) CoordinateResolver {
	return ResolverFunc(func(d *entities.Doctor) (entities.Coordinates, bool) {
		if c, ok := d.Coordinates(); ok {
			return c, true
		}
		if lookup == nil || d.Location == "" {
			return entities.Coordinates{}, false
		}
		return lookup(d.Location)
	})
}

// DoctorDistance pairs a doctor with its distance from the search origin
type DoctorDistance struct {
	Doctor *entities.Doctor `json:"doctor"`
	Miles  float64          `json:"miles"`
}

// DistanceMiles is the great-circle distance between two coordinates
func DistanceMiles(a, b entities.Coordinates) float64 {
	return geo.HaversineMiles(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// DistanceFilter keeps the doctors within radiusMiles of origin, in input
// order. With no origin every doctor passes. Doctors whose coordinate cannot
// be resolved are dropped.
func DistanceFilter(doctors []*entities.Doctor, origin *entities.Coordinates, radiusMiles float64, resolver CoordinateResolver) []*entities.Doctor {
	if origin == nil {
		out := make([]*entities.Doctor, len(doctors))
		copy(out, doctors)
		return out
	}

	nearby := withinRadius(doctors, *origin, radiusMiles, resolver)
	out := make([]*entities.Doctor, 0, len(nearby))
	for _, n := range nearby {
		out = append(out, n.Doctor)
	}
	return out
}

// Nearby is DistanceFilter with distances attached, ordered nearest first
func Nearby(doctors []*entities.Doctor, origin entities.Coordinates, radiusMiles float64, resolver CoordinateResolver) []DoctorDistance {
	out := withinRadius(doctors, origin, radiusMiles, resolver)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Miles < out[j].Miles
	})
	return out
}

func withinRadius(doctors []*entities.Doctor, origin entities.Coordinates, radiusMiles float64, resolver CoordinateResolver) []DoctorDistance {
	if resolver == nil {
		resolver = AddressResolver
	}

	out := make([]DoctorDistance, 0, len(doctors))
	for _, d := range doctors {
		if d == nil {
			continue
		}
		c, ok := resolver.Resolve(d)
		if !ok {
			continue
		}
		miles := DistanceMiles(origin, c)
		if miles <= radiusMiles {
			out = append(out, DoctorDistance{Doctor: d, Miles: miles})
		}
	}
	return out
}

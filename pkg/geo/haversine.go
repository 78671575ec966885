// Package geo holds great-circle helpers shared by the search engine and the
// geolocation provider.
package geo

import "math"

const (
	// EarthRadiusMiles is the mean radius of the Earth in miles
	EarthRadiusMiles = 3959.0

	// EarthRadiusKm is the mean radius of the Earth in kilometers
	EarthRadiusKm = 6371.0
)

// Haversine returns the great-circle distance between two points given in
// degrees, scaled by radius.
func Haversine(lat1, lon1, lat2, lon2, radius float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}

// HaversineMiles returns the distance in miles
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return Haversine(lat1, lon1, lat2, lon2, EarthRadiusMiles)
}

// HaversineKm returns the distance in kilometers
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	return Haversine(lat1, lon1, lat2, lon2, EarthRadiusKm)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

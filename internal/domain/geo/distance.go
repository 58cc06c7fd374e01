// Package geo provides great-circle distance math for radius-based filtering.
package geo

import "math"

const earthRadiusKm = 6371.0

// Latitude/longitude bounds for coordinate validation.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// DistanceKm calculates the great circle distance between two points in
// kilometers using the haversine formula. Inputs are in degrees.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLng := lng2Rad - lng1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// ValidLatitude reports whether lat is inside the valid latitude range.
func ValidLatitude(lat float64) bool {
	return lat >= MinLatitude && lat <= MaxLatitude
}

// ValidLongitude reports whether lng is inside the valid longitude range.
func ValidLongitude(lng float64) bool {
	return lng >= MinLongitude && lng <= MaxLongitude
}

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Identity(t *testing.T) {
	coords := [][2]float64{
		{0, 0},
		{31.9454, 35.9284},
		{-90, 0},
		{90, 180},
		{45.5, -122.6},
	}

	for _, c := range coords {
		assert.Zero(t, DistanceKm(c[0], c[1], c[0], c[1]))
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := []struct {
		lat1, lng1, lat2, lng2 float64
	}{
		{31.9454, 35.9284, 31.96, 35.94},
		{0, 0, 45, 90},
		{-33.87, 151.21, 51.51, -0.13},
	}

	for _, p := range pairs {
		forward := DistanceKm(p.lat1, p.lng1, p.lat2, p.lng2)
		backward := DistanceKm(p.lat2, p.lng2, p.lat1, p.lng1)
		assert.InDelta(t, forward, backward, 1e-9)
	}
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		expectedKm             float64
		toleranceKm            float64
	}{
		{
			// Downtown Amman to Queen Alia airport, roughly 30 km.
			name: "Amman to QAIA",
			lat1: 31.9454, lng1: 35.9284,
			lat2: 31.7226, lng2: 35.9932,
			expectedKm:  25.5,
			toleranceKm: 2,
		},
		{
			name: "one degree of latitude at the equator",
			lat1: 0, lng1: 0,
			lat2: 1, lng2: 0,
			expectedKm:  111.19,
			toleranceKm: 0.1,
		},
		{
			name: "antipodal points",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 180,
			expectedKm:  20015.09,
			toleranceKm: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.expectedKm, got, tt.toleranceKm)
		})
	}
}

func TestDistanceKm_NonNegative(t *testing.T) {
	assert.GreaterOrEqual(t, DistanceKm(10, 20, -30, -40), 0.0)
	assert.GreaterOrEqual(t, DistanceKm(-90, -180, 90, 180), 0.0)
}

func TestValidLatitude(t *testing.T) {
	assert.True(t, ValidLatitude(0))
	assert.True(t, ValidLatitude(-90))
	assert.True(t, ValidLatitude(90))
	assert.False(t, ValidLatitude(90.0001))
	assert.False(t, ValidLatitude(-91))
}

func TestValidLongitude(t *testing.T) {
	assert.True(t, ValidLongitude(0))
	assert.True(t, ValidLongitude(-180))
	assert.True(t, ValidLongitude(180))
	assert.False(t, ValidLongitude(180.5))
	assert.False(t, ValidLongitude(-180.5))
}

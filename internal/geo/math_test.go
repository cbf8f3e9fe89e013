package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKnownValues(t *testing.T) {
	testCases := []struct {
		name        string
		lat1, lon1  float64
		lat2, lon2  float64
		expectedKm  float64
		toleranceKm float64
	}{
		{"one degree of longitude at the equator", 0, 0, 0, 1, 111.19, 0.01},
		{"London to Paris", 51.5074, -0.1278, 48.8566, 2.3522, 343.5, 1.0},
		{"Milan to Cortina", 45.4642, 9.1900, 46.5405, 12.1357, 255.0, 5.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Haversine(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InDelta(t, tc.expectedKm, d, tc.toleranceKm)
		})
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	d := Haversine(46.5405, 12.1357, 46.5405, 12.1357)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestHaversineSymmetry(t *testing.T) {
	ab := Haversine(51.5074, -0.1278, 48.8566, 2.3522)
	ba := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestMercatorToWGS84(t *testing.T) {
	t.Run("origin", func(t *testing.T) {
		lon, lat := MercatorToWGS84(0, 0)
		assert.InDelta(t, 0, lon, 1e-9)
		assert.InDelta(t, 0, lat, 1e-9)
	})

	t.Run("antimeridian", func(t *testing.T) {
		lon, _ := MercatorToWGS84(20037508.34, 0)
		assert.InDelta(t, 180, lon, 0.001)
	})

	t.Run("Milan", func(t *testing.T) {
		lon, lat := MercatorToWGS84(1023019, 5694400)
		assert.InDelta(t, 9.19, lon, 0.01)
		assert.InDelta(t, 45.46, lat, 0.05)
	})

	t.Run("latitude clamped at projection limit", func(t *testing.T) {
		_, lat := MercatorToWGS84(0, 40000000)
		assert.InDelta(t, 85.05112878, lat, 1e-9)

		_, lat = MercatorToWGS84(0, -40000000)
		assert.InDelta(t, -85.05112878, lat, 1e-9)
	})
}

package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// mercatorRadius is the WGS84 semi-major axis used by EPSG:3857.
const mercatorRadius = 6378137.0

// Haversine returns the great-circle distance in kilometers between two
// WGS84 points given in decimal degrees.
//
// The Earth is treated as a sphere of radius EarthRadiusKm; there is no
// ellipsoidal correction, which is fine for city-scale distances.
// Coordinates are not range-checked: out-of-range values are accepted and
// produce geometrically meaningless results.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// MercatorToWGS84 converts Web Mercator (EPSG:3857) meters to WGS84 Lon/Lat
// using the inverse spherical Mercator projection.
func MercatorToWGS84(x, y float64) (lon, lat float64) {
	lon = (x / mercatorRadius) * (180.0 / math.Pi)

	// Inverse Mercator projection
	latRad := (2.0 * math.Atan(math.Exp(y/mercatorRadius))) - (math.Pi * 0.5)

	const MaxLat = 85.05112878
	lat = latRad * (180.0 / math.Pi)

	if lat > MaxLat {
		lat = MaxLat
	} else if lat < -MaxLat {
		lat = -MaxLat
	}

	return lon, lat
}

// Package geo handles geographic data structures and coordinate conversions.
package geo

import "fmt"

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature (Point, Polygon, etc.).
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// PointFeature builds a Point feature from WGS84 coordinates and properties.
func PointFeature(lon, lat float64, props map[string]interface{}) GeoJSONFeature {
	return GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
		Properties: props,
	}
}

// Lon returns the feature longitude, or 0 for a non-point geometry.
func (f *GeoJSONFeature) Lon() float64 {
	if len(f.Geometry.Coordinates) < 2 {
		return 0
	}
	return f.Geometry.Coordinates[0]
}

// Lat returns the feature latitude, or 0 for a non-point geometry.
func (f *GeoJSONFeature) Lat() float64 {
	if len(f.Geometry.Coordinates) < 2 {
		return 0
	}
	return f.Geometry.Coordinates[1]
}

// Property returns the named attribute and whether it is present.
func (f *GeoJSONFeature) Property(name string) (interface{}, bool) {
	v, ok := f.Properties[name]
	return v, ok
}

// PropertyString returns the named attribute rendered as a string,
// or "" when the attribute is absent.
func (f *GeoJSONFeature) PropertyString(name string) string {
	v, ok := f.Properties[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

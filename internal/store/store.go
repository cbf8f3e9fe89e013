// Package store loads and queries point-feature venue datasets.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/geo"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Supported source coordinate reference systems.
const (
	CRSWGS84       = "EPSG:4326"
	CRSWebMercator = "EPSG:3857"
)

// Store is an ordered collection of point features in WGS84.
//
// A Store is read-only after Load: consumers that derive coordinate data
// work on their own copies and never write back into the feature slice.
type Store struct {
	features []geo.GeoJSONFeature
}

// Load reads a feature collection from disk wholesale into memory.
// The format is chosen by extension: .yaml/.yml is parsed as YAML,
// everything else as GeoJSON. Non-point features are skipped.
//
// crs names the coordinate system of the source file; Web Mercator
// coordinates are re-projected to WGS84 on load. An empty crs means WGS84.
func Load(path, crs string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc geo.GeoJSONFeatureCollection
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	project := false
	switch crs {
	case "", CRSWGS84:
	case CRSWebMercator:
		project = true
	default:
		return nil, fmt.Errorf("unsupported CRS %q: use %q or %q", crs, CRSWGS84, CRSWebMercator)
	}

	features := make([]geo.GeoJSONFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			log.Debug().
				Str("type", f.Geometry.Type).
				Msg("Skipping non-point feature")
			continue
		}

		if project {
			lon, lat := geo.MercatorToWGS84(f.Geometry.Coordinates[0], f.Geometry.Coordinates[1])
			f.Geometry.Coordinates = []float64{lon, lat}
		}

		features = append(features, f)
	}

	log.Info().
		Str("path", path).
		Int("points", len(features)).
		Msg("Dataset loaded")

	return &Store{features: features}, nil
}

// FromFeatures builds a Store directly from point features, keeping order.
func FromFeatures(features []geo.GeoJSONFeature) *Store {
	return &Store{features: features}
}

// Len returns the number of points in the store.
func (s *Store) Len() int {
	return len(s.features)
}

// Features returns the underlying feature slice in load order.
// Callers must treat it as read-only.
func (s *Store) Features() []geo.GeoJSONFeature {
	return s.features
}

// At returns the feature at index i.
func (s *Store) At(i int) geo.GeoJSONFeature {
	return s.features[i]
}

// Collection wraps the features back into a GeoJSON feature collection.
func (s *Store) Collection() geo.GeoJSONFeatureCollection {
	return geo.GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: s.features,
	}
}

// FilterByAttribute returns a new Store holding the subsequence of features
// whose named attribute equals value exactly. No partial matching and no
// type coercion: a string never equals a number.
func (s *Store) FilterByAttribute(name string, value interface{}) *Store {
	matched := make([]geo.GeoJSONFeature, 0)
	for _, f := range s.features {
		if v, ok := f.Properties[name]; ok && v == value {
			matched = append(matched, f)
		}
	}
	return &Store{features: matched}
}

// Centroid returns the arithmetic mean of all point coordinates,
// used as the map center. An empty store centers at (0, 0).
func (s *Store) Centroid() (lat, lon float64) {
	if len(s.features) == 0 {
		return 0, 0
	}
	for i := range s.features {
		lat += s.features[i].Lat()
		lon += s.features[i].Lon()
	}
	n := float64(len(s.features))
	return lat / n, lon / n
}

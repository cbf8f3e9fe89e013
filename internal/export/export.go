// Package export persists feature collections and ranked tables to disk.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/rank"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Supported export format identifiers.
const (
	FormatGeoJSON = "geojson"
	FormatYAML    = "yaml"
	FormatCSV     = "csv"
)

// Features writes the store to path in the requested format.
// FormatGeoJSON and FormatYAML preserve geometry; FormatCSV writes the
// attribute table only, dropping the geometry column. Unknown format
// identifiers are rejected before any file is created.
func Features(s *store.Store, path, format string) error {
	switch format {
	case FormatGeoJSON:
		return writeJSON(path, s.Collection())
	case FormatYAML:
		return writeYAML(path, s.Collection())
	case FormatCSV:
		return writeAttributesCSV(s, path)
	default:
		return fmt.Errorf("unsupported file format %q: use %q, %q or %q",
			format, FormatGeoJSON, FormatYAML, FormatCSV)
	}
}

// RankedTable writes a ranked distance table as delimited text with the
// column order latitude, longitude, distance_km, city, venue_name.
func RankedTable(records []rank.Record, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer closeLogged(f, path)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"latitude", "longitude", "distance_km", "city", "venue_name"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatFloat(r.Latitude, 'f', -1, 64),
			strconv.FormatFloat(r.Longitude, 'f', -1, 64),
			strconv.FormatFloat(r.DistanceKm, 'f', -1, 64),
			r.City,
			r.VenueName,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// writeAttributesCSV emits the union of attribute names as the header,
// sorted for a deterministic column order, one row per feature.
func writeAttributesCSV(s *store.Store, path string) error {
	seen := make(map[string]bool)
	columns := make([]string, 0)
	for _, f := range s.Features() {
		for name := range f.Properties {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)

	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer closeLogged(f, path)

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, feature := range s.Features() {
		for i, name := range columns {
			row[i] = feature.PropertyString(name)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeJSON(path string, v interface{}) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer closeLogged(f, path)

	return json.NewEncoder(f).Encode(v)
}

func writeYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func createFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// We care about write errors on close
func closeLogged(f *os.File, path string) {
	if closeErr := f.Close(); closeErr != nil {
		log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
	}
}

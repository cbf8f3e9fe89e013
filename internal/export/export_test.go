package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/geo"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/rank"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func venueStore() *store.Store {
	return store.FromFeatures([]geo.GeoJSONFeature{
		geo.PointFeature(9.1240, 45.4781, map[string]interface{}{
			"city": "Milan", "venue_name": "San Siro Stadium", "region": "Lombardy",
		}),
		geo.PointFeature(12.1419, 46.5455, map[string]interface{}{
			"city": "Cortina d'Ampezzo", "venue_name": "Sliding Centre", "region": "Veneto",
		}),
	})
}

func TestUnsupportedFormatRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.xml")

	err := Features(venueStore(), path, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")

	// No file may be written on rejection
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportGeoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.geojson")
	require.NoError(t, Features(venueStore(), path, FormatGeoJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fc geo.GeoJSONFeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, []float64{9.1240, 45.4781}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "San Siro Stadium", fc.Features[0].PropertyString("venue_name"))
}

func TestExportYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.yaml")
	require.NoError(t, Features(venueStore(), path, FormatYAML))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fc geo.GeoJSONFeatureCollection
	require.NoError(t, yaml.Unmarshal(data, &fc))
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Sliding Centre", fc.Features[1].PropertyString("venue_name"))
}

func TestExportAttributesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.csv")
	require.NoError(t, Features(venueStore(), path, FormatCSV))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Geometry is dropped; attribute columns come out sorted
	assert.Equal(t, []string{"city", "region", "venue_name"}, rows[0])
	assert.Equal(t, []string{"Milan", "Lombardy", "San Siro Stadium"}, rows[1])
	assert.Equal(t, []string{"Cortina d'Ampezzo", "Veneto", "Sliding Centre"}, rows[2])
}

func TestExportRankedTable(t *testing.T) {
	records := []rank.Record{
		{Latitude: 45.4781, Longitude: 9.1240, DistanceKm: 5.61, City: "Milan", VenueName: "San Siro Stadium"},
		{Latitude: 46.5455, Longitude: 12.1419, DistanceKm: 255.42, City: "Cortina d'Ampezzo", VenueName: "Sliding Centre"},
	}

	path := filepath.Join(t.TempDir(), "ranked.csv")
	require.NoError(t, RankedTable(records, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"latitude", "longitude", "distance_km", "city", "venue_name"}, rows[0])
	assert.Equal(t, "5.61", rows[1][2])
	assert.Equal(t, "Sliding Centre", rows[2][4])
}

func TestExportEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, Features(store.FromFeatures(nil), path, FormatCSV))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Header only, and the header itself is empty without attributes
	assert.Equal(t, "\n", string(data))
}

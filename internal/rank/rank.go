// Package rank orders venues by great-circle distance from a reference point.
package rank

import (
	"sort"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/geo"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"
)

// Record is one row of the ranked distance table.
type Record struct {
	Latitude   float64 `json:"latitude" yaml:"latitude"`
	Longitude  float64 `json:"longitude" yaml:"longitude"`
	DistanceKm float64 `json:"distance_km" yaml:"distance_km"`
	City       string  `json:"city" yaml:"city"`
	VenueName  string  `json:"venue_name" yaml:"venue_name"`
}

// ByDistance computes the haversine distance from the reference point to
// every venue in the store and returns one record per venue, sorted
// ascending by distance. Ties keep the store order (stable sort).
//
// The store is read but never modified; the returned table is freshly
// allocated on every call. An empty store yields an empty table.
// Reference coordinates are not range-checked: out-of-range values are
// accepted and produce geometrically meaningless distances.
func ByDistance(lat, lon float64, s *store.Store) []Record {
	records := make([]Record, 0, s.Len())

	for _, f := range s.Features() {
		records = append(records, Record{
			Latitude:   f.Lat(),
			Longitude:  f.Lon(),
			DistanceKm: geo.Haversine(lat, lon, f.Lat(), f.Lon()),
			City:       f.PropertyString("city"),
			VenueName:  f.PropertyString("venue_name"),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DistanceKm < records[j].DistanceKm
	})

	return records
}

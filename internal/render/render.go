// Package render builds interactive map documents and density images
// from a venue store.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

// Options controls the generated map document.
type Options struct {
	Title string
	Zoom  int
}

// marker is the per-point payload embedded into the map document.
type marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Popup string  `json:"popup"`
}

type pageData struct {
	Title     string
	CenterLat float64
	CenterLon float64
	Zoom      int
	Markers   string
	Heat      string
}

const mapTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
{{if .Heat}}<script src="https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"></script>{{end}}
<style>
html, body, #map { height: 100%; margin: 0; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
	attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
{{if .Markers}}
var markers = {{.Markers}};
markers.forEach(function (m) {
	L.marker([m.lat, m.lon]).bindPopup(m.popup, { maxWidth: 300 }).addTo(map);
});
{{end}}
{{if .Heat}}
L.heatLayer({{.Heat}}).addTo(map);
{{end}}
</script>
</body>
</html>
`

// MarkerMap renders an interactive document with one marker per venue and a
// popup built from the venue attributes, centered at the store centroid.
func MarkerMap(s *store.Store, opts Options) (string, error) {
	markers := make([]marker, 0, s.Len())
	for i, f := range s.Features() {
		popup := fmt.Sprintf(
			"<strong>Point ID:</strong> %d<br>"+
				"<strong>Latitude:</strong> %g<br>"+
				"<strong>Longitude:</strong> %g<br>"+
				"<strong>City:</strong> %s<br>"+
				"<strong>Venue Name:</strong> %s<br>"+
				"<strong>Region:</strong> %s<br>"+
				"<strong>Events:</strong> %s<br>",
			i, f.Lat(), f.Lon(),
			f.PropertyString("city"),
			f.PropertyString("venue_name"),
			f.PropertyString("region"),
			f.PropertyString("events"),
		)
		markers = append(markers, marker{Lat: f.Lat(), Lon: f.Lon(), Popup: popup})
	}

	data, err := json.Marshal(markers)
	if err != nil {
		return "", err
	}

	return renderPage(s, opts, string(data), "")
}

// Heatmap renders an interactive document with a point-density heat layer
// built from the raw venue coordinates.
func Heatmap(s *store.Store, opts Options) (string, error) {
	points := make([][2]float64, 0, s.Len())
	for _, f := range s.Features() {
		points = append(points, [2]float64{f.Lat(), f.Lon()})
	}

	data, err := json.Marshal(points)
	if err != nil {
		return "", err
	}

	return renderPage(s, opts, "", string(data))
}

// SaveHTML writes a rendered document to disk.
func SaveHTML(doc, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return err
	}

	log.Info().Str("path", path).Int("bytes", len(doc)).Msg("Map document saved")
	return nil
}

func renderPage(s *store.Store, opts Options, markers, heat string) (string, error) {
	if opts.Zoom <= 0 {
		opts.Zoom = 8
	}
	if opts.Title == "" {
		opts.Title = "Venues"
	}

	centerLat, centerLon := s.Centroid()

	tmpl, err := template.New("map").Parse(mapTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, pageData{
		Title:     opts.Title,
		CenterLat: centerLat,
		CenterLon: centerLon,
		Zoom:      opts.Zoom,
		Markers:   markers,
		Heat:      heat,
	})
	if err != nil {
		return "", err
	}

	m := minify.New()
	m.AddFunc("text/html", mhtml.Minify)

	return m.String("text/html", buf.String())
}

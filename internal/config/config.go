// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Dataset   Dataset `yaml:"dataset"`
	Title     string  `yaml:"title,omitempty"`
	OutputDir string  `yaml:"output_dir,omitempty"`
	Zoom      int     `yaml:"zoom,omitempty"`
}

// Dataset points at the venue feature file on disk.
type Dataset struct {
	// Path to a GeoJSON or YAML feature collection.
	Path string `yaml:"path"`

	// CRS of the source coordinates: "EPSG:4326" (default) or "EPSG:3857".
	CRS string `yaml:"crs,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "out"
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = 8
	}
	if cfg.Title == "" {
		cfg.Title = "Venues"
	}

	return &cfg, nil
}

package main

import (
	"os"
	"path/filepath"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/config"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/logger"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/render"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string `short:"c" long:"config"       env:"CONFIG_FILE" description:"Path to configuration file"`
	Dataset     string `short:"d" long:"dataset"      env:"DATASET"     description:"Path to the venue feature file (overrides config)"`
	CRS         string `short:"s" long:"crs"          env:"DATASET_CRS" description:"CRS of the source coordinates (overrides config)"`
	OutputDir   string `short:"o" long:"output-dir"   env:"OUTPUT_DIR"  description:"Directory for generated artifacts"`
	Zoom        int    `short:"z" long:"zoom"         env:"MAP_ZOOM"    description:"Initial map zoom level"`
	Title       string `short:"T" long:"title"                          description:"Map document title"`
	MarkersOnly bool   `short:"m" long:"markers-only"                   description:"Generate the marker map only"`
	HeatmapOnly bool   `short:"H" long:"heatmap-only"                   description:"Generate the heatmap only"`
	RasterSize  int    `short:"r" long:"raster-size"                    description:"Density raster size in pixels (0 disables)" default:"512"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := &config.Config{OutputDir: "out", Zoom: 8, Title: "Venues"}
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		cfg = loaded
	}

	if opts.Dataset != "" {
		cfg.Dataset.Path = opts.Dataset
	}
	if opts.CRS != "" {
		cfg.Dataset.CRS = opts.CRS
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.Zoom > 0 {
		cfg.Zoom = opts.Zoom
	}
	if opts.Title != "" {
		cfg.Title = opts.Title
	}

	if cfg.Dataset.Path == "" {
		log.Fatal().Msg("No dataset specified, use --dataset or a config file")
	}

	venues, err := store.Load(cfg.Dataset.Path, cfg.Dataset.CRS)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
	}

	renderMarkers := true
	renderHeat := true
	if opts.MarkersOnly && !opts.HeatmapOnly {
		renderHeat = false
	} else if opts.HeatmapOnly && !opts.MarkersOnly {
		renderMarkers = false
	}

	mapOpts := render.Options{Title: cfg.Title, Zoom: cfg.Zoom}

	if renderMarkers {
		doc, err := render.MarkerMap(venues, mapOpts)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render marker map")
		}
		if err := render.SaveHTML(doc, filepath.Join(cfg.OutputDir, "venues.html")); err != nil {
			log.Fatal().Err(err).Msg("Failed to save marker map")
		}
	}

	if renderHeat {
		doc, err := render.Heatmap(venues, mapOpts)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render heatmap")
		}
		if err := render.SaveHTML(doc, filepath.Join(cfg.OutputDir, "heatmap.html")); err != nil {
			log.Fatal().Err(err).Msg("Failed to save heatmap")
		}

		if opts.RasterSize > 0 {
			dst := filepath.Join(cfg.OutputDir, "density.webp")
			if err := render.DensityImage(venues, dst, opts.RasterSize); err != nil {
				log.Fatal().Err(err).Msg("Failed to render density image")
			}
		}
	}

	log.Info().Str("dir", cfg.OutputDir).Msg("Render finished successfully")
}

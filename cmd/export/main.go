package main

import (
	"os"
	"strings"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/export"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/logger"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dataset string `short:"d" long:"dataset" env:"DATASET"     description:"Path to the venue feature file" required:"true"`
	CRS     string `short:"s" long:"crs"     env:"DATASET_CRS" description:"CRS of the source coordinates"`
	Format  string `short:"f" long:"format"                    description:"Export format"                  default:"geojson" choice:"geojson" choice:"yaml" choice:"csv"`
	Output  string `short:"o" long:"output"                    description:"Destination file path"          required:"true"`
	Where   string `short:"w" long:"where"                     description:"Attribute filter, e.g. city=Milan"`
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

	venues, err := store.Load(opts.Dataset, opts.CRS)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Dataset).Msg("Failed to load dataset")
	}

	if opts.Where != "" {
		name, value, found := strings.Cut(opts.Where, "=")
		if !found || name == "" {
			log.Fatal().Str("where", opts.Where).Msg("Filter must be of the form attribute=value")
		}

		venues = venues.FilterByAttribute(name, value)
		log.Info().
			Str("attribute", name).
			Str("value", value).
			Int("matched", venues.Len()).
			Msg("Filter applied")
	}

	if err := export.Features(venues, opts.Output, opts.Format); err != nil {
		log.Fatal().Err(err).Str("format", opts.Format).Msg("Export failed")
	}

	log.Info().
		Str("path", opts.Output).
		Str("format", opts.Format).
		Int("points", venues.Len()).
		Msg("Export finished successfully")
}

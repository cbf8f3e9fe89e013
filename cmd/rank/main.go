package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/export"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/logger"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/prompt"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/rank"
	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dataset string `short:"d" long:"dataset" env:"DATASET"     description:"Path to the venue feature file" required:"true"`
	CRS     string `short:"s" long:"crs"     env:"DATASET_CRS" description:"CRS of the source coordinates"`
	Output  string `short:"o" long:"output"                    description:"Optional CSV path for the ranked table"`
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

	ref, ok := prompt.ReadCoordinate(os.Stdin, os.Stdout)
	if !ok {
		os.Exit(1)
	}

	table := rank.ByDistance(ref.Lat, ref.Lon, venues)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "latitude\tlongitude\tdistance_km\tcity\tvenue_name")
	for _, r := range table {
		fmt.Fprintf(w, "%.4f\t%.4f\t%.2f\t%s\t%s\n",
			r.Latitude, r.Longitude, r.DistanceKm, r.City, r.VenueName)
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("Failed to print table")
	}

	if opts.Output != "" {
		if err := export.RankedTable(table, opts.Output); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to export table")
		}
		log.Info().Str("path", opts.Output).Int("rows", len(table)).Msg("Ranked table saved")
	}
}

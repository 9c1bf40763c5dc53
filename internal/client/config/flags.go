package config

import (
	"flag"
	"os"

	"github.com/abhisheksit27/agrovest/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string        path to the local database file
//	-s string        base URL of the crop-analysis server
//	-lat float       latitude for weather lookups
//	-lon float       longitude for weather lookups
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-lat", "-lon"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.AnalyzeEndpointAddr, "s", cfg.AnalyzeEndpointAddr, "base URL of the crop-analysis server")
	fs.Float64Var(&cfg.Latitude, "lat", cfg.Latitude, "latitude for weather lookups")
	fs.Float64Var(&cfg.Longitude, "lon", cfg.Longitude, "longitude for weather lookups")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

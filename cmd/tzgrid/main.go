// Package main implements the tzgrid CLI for rendering working-hours
// timetables across timezones as a PNG grid.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/tzgrid/pkg/country"
	"github.com/codeGROOVE-dev/tzgrid/pkg/grid"
	"github.com/codeGROOVE-dev/tzgrid/pkg/locfile"
	"github.com/codeGROOVE-dev/tzgrid/pkg/timetable"
	"github.com/codeGROOVE-dev/tzgrid/pkg/zonecache"
)

var (
	reference      = flag.String("reference", "", "Reference location code, e.g. FRA (required)")
	countriesPath  = flag.String("countries", "", "Path to text file listing location codes (required)")
	earlyLateColor = flag.String("early-late-color", "#FFD700", "Cell color for early/late hours")
	noonColor      = flag.String("noon-color", "#87CEEB", "Cell color for the noon hour")
	normalColor    = flag.String("normal-color", "white", "Cell color for normal working hours")
	output         = flag.String("o", "timetable.png", "Output PNG file path")
	verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	version        = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("tzgrid v1.0.0")
		return
	}

	if *reference == "" || *countriesPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -reference <code> -countries <file> [flags]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if _, err := os.Stat(*countriesPath); err != nil {
		return fmt.Errorf("countries file not found: %s", *countriesPath)
	}

	palette, err := paletteFromFlags()
	if err != nil {
		return err
	}

	zones := zonecache.New(logger)
	resolver := country.NewResolver(country.DefaultTables(), zones, logger)

	// The reference must resolve before any input line is considered.
	engine, err := timetable.NewEngine(*reference, resolver, zones, logger)
	if err != nil {
		return err
	}

	tokens, err := locfile.Read(*countriesPath)
	if err != nil {
		return err
	}

	// One anchor instant for the whole run keeps every row on the same
	// calendar date, so daylight-saving offsets stay consistent across rows.
	at := time.Now()
	rows, skips, err := timetable.BuildRows(engine, resolver, tokens, at)
	warn := color.New(color.FgYellow)
	for _, skip := range skips {
		warn.Fprintf(os.Stderr, "Warning: %v\n", skip.Err) //nolint:errcheck // best-effort terminal output
	}
	if err != nil {
		return err
	}

	renderer, err := grid.New(palette)
	if err != nil {
		return err
	}
	title := engine.Title(resolver, at)
	if err := renderer.Render(rows, engine.HeaderHours(), title, *output); err != nil {
		return err
	}

	logger.Debug("render complete", "rows", len(rows), "skipped", len(skips), "output", *output)
	color.New(color.FgGreen).Printf("timetable generated: %s\n", *output) //nolint:errcheck // best-effort terminal output
	return nil
}

func paletteFromFlags() (grid.Palette, error) {
	var palette grid.Palette
	var err error
	if palette.EarlyLate, err = grid.ParseColor(*earlyLateColor); err != nil {
		return palette, err
	}
	if palette.Noon, err = grid.ParseColor(*noonColor); err != nil {
		return palette, err
	}
	if palette.Normal, err = grid.ParseColor(*normalColor); err != nil {
		return palette, err
	}
	return palette, nil
}

// reader inspects the NDJSON datasets appended by the Polymarket
// collector: orderbook snapshots, trades, and tick size changes.
//
// Usage:
//
//	reader --stats                     data statistics (the default)
//	reader --snapshots --limit 5       first 5 orderbook snapshots
//	reader --trades --limit 10         first 10 trades
//	reader --all                       everything
//
// The tool only reads; the collector keeps appending while it runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rickgao/polymarket-data/internal/config"
	"github.com/rickgao/polymarket-data/internal/report"
	"github.com/rickgao/polymarket-data/internal/stream"
	"github.com/rickgao/polymarket-data/internal/version"
)

func main() {
	var (
		stats        = flag.Bool("stats", false, "show data statistics")
		snapshots    = flag.Bool("snapshots", false, "show orderbook snapshots")
		priceChanges = flag.Bool("price-changes", false, "(disabled)")
		trades       = flag.Bool("trades", false, "show trades")
		tickChanges  = flag.Bool("tick-changes", false, "show tick size changes")
		all          = flag.Bool("all", false, "show all data")
		limit        = flag.Int("limit", 0, "limit number of records displayed per dataset (0 = unlimited)")
		dataDir      = flag.String("data-dir", "", "data directory (default \"data\")")
		configPath   = flag.String("config", "", "path to config file (optional)")
	)
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}

	logger.Info("starting reader",
		"version", version.Version,
		"commit", version.Commit,
		"run_id", uuid.NewString(),
		"data_dir", cfg.Data.Dir,
	)

	// If no specific selector is set, show stats.
	if !*stats && !*snapshots && !*trades && !*tickChanges && !*all {
		*stats = true
	}

	if _, err := os.Stat(cfg.Data.Dir); err != nil {
		logger.Error("data directory does not exist", "dir", cfg.Data.Dir)
		fmt.Printf("Error: Data directory %q does not exist.\n", cfg.Data.Dir)
		fmt.Println("Run the collector first to generate data.")
		os.Exit(1)
	}

	opts := report.Options{
		BookDepth:    cfg.Display.BookDepth,
		AssetIDWidth: cfg.Display.AssetIDWidth,
	}
	datasets := []report.Dataset{
		{Label: "Orderbook Snapshots", File: cfg.Data.SnapshotsFile},
		{Label: "Trades", File: cfg.Data.TradesFile},
		{Label: "Tick Size Changes", File: cfg.Data.TickSizesFile},
	}
	w := os.Stdout

	// Each dataset runs to completion or to its own fault; a fault in one
	// never stops the others.
	if *stats || *all {
		runDataset(w, logger, "statistics", func() error {
			return report.Statistics(w, cfg.Data.Dir, datasets)
		})
	}
	if *snapshots || *all {
		path := filepath.Join(cfg.Data.Dir, cfg.Data.SnapshotsFile)
		runDataset(w, logger, "snapshots", func() error {
			return report.Snapshots(w, path, *limit, opts)
		})
	}
	if *priceChanges {
		fmt.Fprintln(w, "price_changes.json storage is disabled.")
	}
	if *trades || *all {
		path := filepath.Join(cfg.Data.Dir, cfg.Data.TradesFile)
		runDataset(w, logger, "trades", func() error {
			return report.Trades(w, path, *limit, opts)
		})
	}
	if *tickChanges || *all {
		path := filepath.Join(cfg.Data.Dir, cfg.Data.TickSizesFile)
		runDataset(w, logger, "tick-changes", func() error {
			return report.TickChanges(w, path, *limit, opts)
		})
	}
}

// loadConfig returns defaults when no config path is given.
func loadConfig(path string) (*config.ReaderConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

// runDataset reports one dataset's failure as a single line on w and
// returns, leaving any partial output on screen. A decode fault also gets
// a structured log line as the machine-readable record.
func runDataset(w io.Writer, logger *slog.Logger, name string, fn func() error) {
	err := fn()
	if err == nil {
		return
	}

	var notFound *stream.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(w, "File not found: %s\n", notFound.Path)
		return
	}

	logger.Error("dataset processing failed", "dataset", name, "error", err)
	fmt.Fprintf(w, "Error reading %s: %v\n", name, err)
}

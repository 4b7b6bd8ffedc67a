package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mjansen/ndr-results/internal/config"
	"github.com/mjansen/ndr-results/internal/discovery"
	"github.com/mjansen/ndr-results/internal/logger"
	"github.com/mjansen/ndr-results/internal/monthrange"
	"github.com/mjansen/ndr-results/internal/pipeline"
	"github.com/mjansen/ndr-results/internal/schema"
	"github.com/mjansen/ndr-results/internal/scraper"
	"github.com/mjansen/ndr-results/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagStart      string
	flagEnd        string
	flagOutDir     string
	flagEventsFile string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ndr-results",
		Short: "Scrape Dutch horse-race results from ndr.nl",
		Long: `Fetches race results from ndr.nl for a month range.
Discovers race-day ids from the agenda, retrieves each event's results page,
and writes events, results, and errors as CSV files named after the range
(e.g. results_202201to202205.csv). Individual event failures are logged and
skipped; the run keeps going.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagStart, "start", "", "First month of the interval, YYYY-MM (required)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "Last month of the interval, YYYY-MM (required)")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Output directory for the CSV files (default from config)")
	cmd.Flags().StringVar(&flagEventsFile, "events-file", "", "Reuse an existing events CSV instead of running discovery")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	level := logger.LevelInfo
	if flagVerbose || cfg.Debug {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	rng, err := monthrange.Parse(flagStart, flagEnd)
	if err != nil {
		return err
	}

	outDir := cfg.OutputDir
	if flagOutDir != "" {
		outDir = flagOutDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger.Info("starting run", logger.Fields{
		"range":   rng.String(),
		"out_dir": outDir,
	})

	// Event list: either reused from a previous run or discovered fresh.
	eventsPath := flagEventsFile
	if eventsPath == "" {
		eventsPath = filepath.Join(outDir, rng.EventsFile())
		if err := discoverEvents(cfg, rng, eventsPath); err != nil {
			return err
		}
	}

	ids, err := storage.ReadEventIDs(eventsPath)
	if err != nil {
		return err
	}
	logger.Info("event list ready", logger.Fields{
		"events": len(ids),
		"file":   eventsPath,
	})

	results, err := storage.NewResultWriter(filepath.Join(outDir, rng.ResultsFile()), schema.Columns())
	if err != nil {
		return err
	}
	defer results.Close()

	errlog := storage.NewErrorLog(filepath.Join(outDir, rng.ErrorsFile()))
	defer errlog.Close()

	fetcher := scraper.NewWithOptions(cfg.BaseURL, cfg.FetchTimeout)

	summary, err := pipeline.Run(ids, fetcher, results, errlog)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, rng, summary)
	return nil
}

// discoverEvents runs the agenda crawler for every month of the range and
// persists what it finds. Month results are written as they arrive so
// partial discovery survives a crash.
func discoverEvents(cfg *config.Config, rng *monthrange.Range, eventsPath string) error {
	crawler := discovery.NewWithURL(cfg.AgendaURL)

	for _, m := range rng.Months() {
		events, err := crawler.FetchMonth(m)
		if err != nil {
			return fmt.Errorf("discovering events: %w", err)
		}
		logger.Info("month discovered", logger.Fields{
			"year":   m.Year,
			"month":  m.Month,
			"events": len(events),
		})
		if err := storage.WriteEvents(eventsPath, events); err != nil {
			return err
		}
	}
	return nil
}

// printSummary reports the run outcome plus fetch timing statistics.
func printSummary(w *os.File, rng *monthrange.Range, s pipeline.Summary) {
	fmt.Fprintf(w, "Run complete for %s: %d events, %d rows written, %d skipped\n",
		rng.String(), s.Events, s.Rows, s.Skipped)

	counters, timings := logger.MetricsSnapshot()
	if failed := counters["events.failed"]; failed > 0 {
		fmt.Fprintf(w, "%d events failed; see %s\n", failed, rng.ErrorsFile())
	}
	if stats, ok := timings["fetch"]; ok {
		fmt.Fprintf(w, "Fetch timing: avg %s, min %s, max %s over %d fetches\n",
			stats.Average, stats.Min, stats.Max, stats.Count)
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

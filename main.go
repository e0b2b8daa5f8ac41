package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"routesweep/internal/config"
	"routesweep/internal/db"
	"routesweep/internal/engine"
	"routesweep/internal/flight"
	"routesweep/internal/geo"
	"routesweep/internal/logger"
	"routesweep/internal/metrics"
	"routesweep/internal/report"
	"routesweep/internal/route"
	"routesweep/internal/store"
)

var version = "dev"

func main() {
	cfg := config.Load()

	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent evaluation workers")
	flag.DurationVar(&cfg.RateLimitDelay, "rate-delay", cfg.RateLimitDelay, "min gap between searches per worker")
	flag.IntVar(&cfg.MaxRoutes, "max-routes", cfg.MaxRoutes, "cap on enumerated routes (0 = no cap)")
	flag.BoolVar(&cfg.EasyVisaOnly, "easy-visa", cfg.EasyVisaOnly, "restrict to visa-friendly countries")
	flag.StringVar(&cfg.Carrier, "carrier", cfg.Carrier, "required operating carrier")
	flag.StringVar(&cfg.Hub, "hub", cfg.Hub, "required hub airport code")
	flag.StringVar(&cfg.DepartDate, "depart", cfg.DepartDate, "departure date (YYYY-MM-DD)")
	flag.StringVar(&cfg.SearchBaseURL, "search-url", cfg.SearchBaseURL, "flight search provider base URL")
	flag.StringVar(&cfg.ProgressFile, "progress-file", cfg.ProgressFile, "progress store path")
	flag.StringVar(&cfg.ResultsFile, "results-file", cfg.ResultsFile, "results store path")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite side store path")
	flag.BoolVar(&cfg.FingerprintDates, "fingerprint-dates", cfg.FingerprintDates, "include date window in route identity")
	flag.BoolVar(&cfg.CanonicalOrderOnly, "canonical-order", cfg.CanonicalOrderOnly, "restrict to the canonical continent visit order instead of all orderings")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "prometheus listen address (empty = off)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging")
	countries := flag.String("countries", "", "comma-separated country allow-list (empty = all eligible)")
	topN := flag.Int("top", report.DefaultTopN, "cheapest itineraries to print")
	flag.Parse()

	if *countries != "" {
		cfg.AllowedCountries = nil
		for _, c := range strings.Split(*countries, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.AllowedCountries = append(cfg.AllowedCountries, strings.ToUpper(c))
			}
		}
	}

	logger.SetDebug(cfg.Debug)
	logger.Banner(version)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Error("CONFIG", err.Error())
		os.Exit(1)
	}

	ds := geo.Eligible(geo.Options{
		EasyVisaOnly:     cfg.EasyVisaOnly,
		AllowedCountries: cfg.AllowedCountries,
	})
	if err := ds.Validate(); err != nil {
		logger.Error("GEO", fmt.Sprintf("Reference data unusable: %v", err))
		os.Exit(1)
	}
	logger.Infof("GEO", "%d city combinations per visit order", ds.TotalCombinations())

	mode := route.FingerprintEndpoints
	if cfg.FingerprintDates {
		mode = route.FingerprintEndpointsAndDates
	}
	// Every continent ordering by default; the canonical-order
	// restriction is an explicit opt-in for bounded runs.
	var orders [][]string
	if cfg.CanonicalOrderOnly {
		orders = route.CanonicalOrder()
	}
	routes, err := route.Enumerate(ds, route.EnumerateOptions{
		Orders:          orders,
		Window:          flight.DateWindow{Depart: cfg.DepartDate, ReturnBy: cfg.ReturnBy},
		FingerprintMode: mode,
		MaxRoutes:       cfg.MaxRoutes,
	})
	if err != nil {
		logger.Error("ROUTE", fmt.Sprintf("Enumeration failed: %v", err))
		os.Exit(1)
	}
	logger.Success("ROUTE", fmt.Sprintf("Enumerated %d candidate routes", len(routes)))

	// Corrupt progress or results is fatal: resuming over discarded
	// state would redo completed work.
	progress, err := store.OpenProgress(cfg.ProgressFile)
	if err != nil {
		logger.Error("STORE", err.Error())
		os.Exit(1)
	}
	results, err := store.OpenResults(cfg.ResultsFile)
	if err != nil {
		logger.Error("STORE", err.Error())
		os.Exit(1)
	}
	logger.Infof("STORE", "Loaded %d progress records, %d results", progress.Len(), results.Len())

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()
	if cfg.LegCacheTTL > 0 {
		if pruned, err := database.PruneLegCache(time.Now().Add(-cfg.LegCacheTTL)); err == nil && pruned > 0 {
			logger.Infof("DB", "Pruned %d stale leg cache rows", pruned)
		}
	}

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		m = metrics.New("routesweep")
		metrics.Serve(cfg.MetricsAddr)
	}

	var cache *flight.LegCache
	if cfg.LegCacheTTL > 0 {
		cache = flight.NewLegCache(cfg.LegCacheTTL, database)
	}
	newSearcher := func() flight.Searcher {
		client := flight.NewClient(cfg.SearchBaseURL, cfg.SearchTimeout)
		if cache != nil {
			return flight.NewCachedSearcher(client, cache)
		}
		return client
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coord := &engine.Coordinator{
		Progress:        progress,
		Results:         results,
		Filter:          flight.CarrierFilter{Airline: cfg.Carrier, Hub: cfg.Hub},
		NewSearcher:     newSearcher,
		Workers:         cfg.Workers,
		RateDelay:       cfg.RateLimitDelay,
		FingerprintMode: mode,
		Metrics:         m,
	}

	started := time.Now()
	summary, runErr := coord.Run(ctx, routes)
	if runErr != nil {
		logger.Error("ENGINE", fmt.Sprintf("Run aborted: %v", runErr))
	}

	database.RecordRun(db.RunRecord{
		StartedAt:    started,
		FinishedAt:   time.Now(),
		TotalRoutes:  summary.Total,
		Skipped:      summary.Skipped,
		Done:         summary.Done,
		Failed:       summary.Failed,
		Rejected:     summary.Rejected,
		Errored:      summary.Errored,
		LegsSearched: summary.LegsSearched,
		LegsSaved:    summary.LegsSaved,
		Cancelled:    summary.Cancelled,
		DurationMs:   summary.Elapsed.Milliseconds(),
	})

	report.Print(summary, results, *topN)

	if runErr != nil {
		logger.Sync()
		os.Exit(1)
	}
}

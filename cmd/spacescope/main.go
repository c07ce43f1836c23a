// Command spacescope is a terminal dashboard for Earth and space activity:
// natural events, launches, the ISS and space weather.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/term"

	"github.com/litescript/spacescope/internal/config"
	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/logging"
	"github.com/litescript/spacescope/internal/mock"
	"github.com/litescript/spacescope/internal/observability"
	"github.com/litescript/spacescope/internal/report"
	"github.com/litescript/spacescope/internal/scheduler"
	"github.com/litescript/spacescope/internal/space"
	"github.com/litescript/spacescope/internal/state"
	"github.com/litescript/spacescope/internal/ui"
	"github.com/litescript/spacescope/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	snapshotPath string
	eventsMode   bool
	category     string
	launchesMode bool
	showVersion  bool
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the environment.
	flag.DurationVar(&cfg.ISSInterval, "iss-interval", cfg.ISSInterval, "ISS position update interval (e.g., 5s, 1m)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file")
	flag.StringVar(&cfg.MapStyle, "map-style", cfg.MapStyle, "Initial map style (satellite, dark, light, terrain)")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address (e.g., :9090)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.BoolVar(&eventsMode, "events", false, "List natural events")
	flag.StringVar(&category, "category", string(derive.CategoryAll), "Category filter for --events")
	flag.BoolVar(&launchesMode, "launches", false, "List upcoming and past launches")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("spacescope %s\n", version.Version)
		return nil
	}

	// Clamp the interval rather than reject a flag value.
	if cfg.ISSInterval < config.MinISSInterval {
		cfg.ISSInterval = config.MinISSInterval
	} else if cfg.ISSInterval > config.MaxISSInterval {
		cfg.ISSInterval = config.MaxISSInterval
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	headless := summaryMode || snapshotPath != "" || eventsMode || launchesMode
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if !headless && !isTTY {
		// No terminal to draw on.
		summaryMode, headless = true, true
	}

	logOut, closeLog, err := logOutput(cfg.LogFile, headless)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	clock := clockwork.NewRealClock()
	storeCfg := state.DefaultConfig()
	storeCfg.MaxChanges = cfg.MaxChanges
	storeCfg.ISSInterval = cfg.ISSInterval

	store := state.NewStore(storeCfg, mock.Seed(clock.Now()),
		state.WithClock(clock),
		state.WithLogger(logger),
		state.WithMetrics(metrics),
		state.WithISSModel(cfg.ISSModel()),
	)
	store.SetMapStyle(space.MapStyle(cfg.MapStyle))

	if headless {
		return runHeadless(store, clock.Now())
	}

	if cfg.MetricsAddr != "" {
		srv := observability.NewServer(cfg.MetricsAddr, reg, logger)
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	ticker := scheduler.NewTicker("iss", store.ISSInterval(), store.UpdateISSPosition,
		scheduler.WithClock(clock),
		scheduler.WithLogger(logger))
	ticker.Start(ctx)
	defer ticker.Stop()

	p := tea.NewProgram(ui.New(store), tea.WithAltScreen(), tea.WithContext(ctx))
	unsubscribe := ui.Forward(store, p.Send)
	defer unsubscribe()

	logger.Info("starting", "version", version.Version, "iss_interval", cfg.ISSInterval)

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// logOutput picks the log destination. The TUI owns the terminal, so
// without a log file its logs are discarded.
func logOutput(path string, headless bool) (io.Writer, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if headless {
		return os.Stderr, func() {}, nil
	}
	return io.Discard, func() {}, nil
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(store *state.Store, now time.Time) error {
	snap := store.Snapshot()

	if snapshotPath != "" {
		if err := writeSnapshot(snap, now); err != nil {
			return err
		}
	}

	if summaryMode {
		report.WriteSummary(os.Stdout, snap, now)
	}

	if eventsMode {
		filter := derive.CategoryFilter(category)
		if !validFilter(filter) {
			return fmt.Errorf("unknown category %q", category)
		}
		fmt.Println()
		report.WriteEvents(os.Stdout, store.FilterEventsByCategory(filter), filter)
	}

	if launchesMode {
		fmt.Println()
		report.WriteLaunches(os.Stdout, snap.Launches, now)
	}
	return nil
}

func writeSnapshot(snap state.Snapshot, now time.Time) error {
	export := report.BuildExport(snap, now)
	if snapshotPath == "-" {
		if err := export.WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("write JSON to stdout: %w", err)
		}
		return nil
	}

	f, err := os.Create(snapshotPath)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()
	if err := export.WriteJSON(f); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	return nil
}

func validFilter(f derive.CategoryFilter) bool {
	for _, candidate := range derive.CategoryFilters() {
		if candidate == f {
			return true
		}
	}
	return false
}

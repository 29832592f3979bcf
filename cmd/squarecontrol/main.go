// squarecontrol is a chess-piece placement puzzle for the terminal.
//
// Usage:
//
//	squarecontrol list               - List levels with completion marks
//	squarecontrol play [id]          - Play in the terminal
//	squarecontrol preview [id]       - Print boards as text
//	squarecontrol generate           - Generate a level from options
//	squarecontrol serve              - Start SSH (and optionally HTTP) servers
//	squarecontrol progress <action>  - Export, reset or rate progress
//	squarecontrol stats [id]         - Show best solves
//
// Global flags:
//
//	--config <path>     - Configuration file
//	--db <path>         - SQLite progress database (overrides config)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/config"
	"github.com/vovakirdan/squarecontrol/internal/platform/tui"
	"github.com/vovakirdan/squarecontrol/internal/progress"
	"github.com/vovakirdan/squarecontrol/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "squarecontrol",
	Short: "Square Control - place chess pieces to control every target",
	Long: `Square Control is a puzzle played on small chess boards. Each target
square shows how many of your pieces must attack it. Drop pieces from the
depot onto the board until every target is controlled exactly.

Examples:
  squarecontrol list
  squarecontrol play sc:12
  squarecontrol preview sc:3 --solution
  squarecontrol generate --seed 42 --format yaml
  squarecontrol serve --ssh :23234 --http :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite progress database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(statsCmd)
}

// env is what every command starts from.
type env struct {
	cfg     config.AppConfig
	logger  *log.Logger
	catalog *catalog.Catalog
}

// loadEnv reads configuration, applies flag overrides and loads the catalog.
func loadEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.Driver = storage.DriverSQLite
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Log.Prefix,
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}

	cat, err := catalog.Load(cfg.Catalog.Files...)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, catalog: cat}, nil
}

// openStore opens the configured progress backend.
func (e *env) openStore(ctx context.Context) (storage.KV, error) {
	return storage.Open(ctx, storage.Config{
		Driver:      e.cfg.Storage.Driver,
		Path:        e.cfg.Storage.Path,
		RedisURL:    e.cfg.Storage.RedisURL,
		DatabaseURL: e.cfg.Storage.DatabaseURL,
	})
}

// deps opens the store and bundles the collaborators of the UI.
// Without a store the UI still runs, just without saved progress.
func (e *env) deps(ctx context.Context) (tui.Deps, func()) {
	d := tui.Deps{Catalog: e.catalog, Logger: e.logger}
	kv, err := e.openStore(ctx)
	if err != nil {
		e.logger.Warn("could not open progress store", "error", err)
		return d, func() {}
	}
	d.Progress = progress.New(kv)
	if sl, ok := kv.(tui.SolveLog); ok {
		d.Solves = sl
	}
	return d, func() {
		if err := kv.Close(); err != nil {
			e.logger.Warn("closing progress store", "error", err)
		}
	}
}

// exitOnErr prints err and exits.
func exitOnErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, catalog.ErrLevelNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'squarecontrol list' to see available levels.")
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

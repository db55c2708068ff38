// Package cmd implements the memento CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/config"
)

var (
	flagConfig string
	flagDate   string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "memento",
	Short: "Life-in-weeks reminder CLI",
	Long:  "Compute and display perspectives on your remaining lifetime: weeks, weekends, vacations, and time with the people who matter.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "  %s\n  Run `memento setup` or `memento config edit` to fix it.\n", cfgErr)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.Path(), "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Evaluate as of this date (YYYY-MM-DD) instead of today")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// evalDate resolves the evaluation date: --date when given, otherwise now.
func evalDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", flagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", flagDate)
	}
	return d, nil
}

// loadConfig is the shared load path used by all report commands.
func loadConfig() (config.Config, time.Time, error) {
	today, err := evalDate()
	if err != nil {
		return config.Config{}, time.Time{}, err
	}

	if !config.Exists(flagConfig) {
		return config.Config{}, time.Time{}, fmt.Errorf(
			"no config file at %s — run `memento setup` first", flagConfig)
	}

	cfg, err := config.Load(flagConfig, today)
	if err != nil {
		return config.Config{}, time.Time{}, err
	}
	return cfg, today, nil
}

// stateDir returns the XDG state directory for the journal, pid file, and
// daemon log.
func stateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "memento")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "memento")
}

// quotesPath is the optional quote override file next to the config.
func quotesPath() string {
	return filepath.Join(filepath.Dir(flagConfig), "quotes.toml")
}

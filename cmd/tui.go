package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/quotes"
	"github.com/theirongolddev/memento/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, today, err := loadConfig()
	if err != nil {
		return err
	}

	book, err := quotes.Load(quotesPath())
	if err != nil {
		return err
	}

	// Pin the evaluation date when --date is set.
	var now func() time.Time
	if flagDate != "" {
		now = func() time.Time { return today }
	}

	app := tui.NewApp(cfg, book, now)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

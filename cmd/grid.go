package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/cli"
	"github.com/theirongolddev/memento/internal/engine"
)

// gridYears is how many year rows the grid draws regardless of the
// configured lifespan, so an optimistic 90th row is always visible.
const gridYears = 90

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Life-in-weeks grid, one cell per week",
	RunE:  runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(_ *cobra.Command, _ []string) error {
	cfg, today, err := loadConfig()
	if err != nil {
		return err
	}

	report := engine.Assemble(today, cfg)
	life, _ := report.View(engine.KeyTotalLife)

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR LIFE IN WEEKS"))
	fmt.Printf("  Each box is one week. %d years = %s weeks total\n\n",
		cfg.ExpectedLifespanYears, cli.FormatCount(life.Total))

	fmt.Print(cli.RenderLifeGrid(int(life.Used), int(life.Total), gridYears))

	fmt.Println()
	fmt.Println("  " + cli.RenderGridLegend())
	fmt.Printf("  %s weeks lived  •  %s weeks remaining  •  %s complete\n",
		cli.FormatCount(life.Used), cli.FormatCount(life.Remaining),
		cli.FormatPercent(life.PercentComplete))

	if !flagQuiet {
		fmt.Println()
		fmt.Println("  " + cli.RenderMuted("Every week counts. Make them meaningful."))
	}

	fmt.Println()
	return nil
}

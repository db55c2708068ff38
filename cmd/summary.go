package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/cli"
	"github.com/theirongolddev/memento/internal/engine"
	"github.com/theirongolddev/memento/internal/quotes"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Full life-perspective summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, today, err := loadConfig()
	if err != nil {
		return err
	}

	report := engine.Assemble(today, cfg)
	life, _ := report.View(engine.KeyTotalLife)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MEMENTO MORI — THE REAL TIME"))
	fmt.Println()

	rows := [][]string{
		{"Current Age", cli.FormatYears(engine.AgeYears(today, cfg))},
		{"Years Remaining", cli.FormatWeeksAsYears(life.Remaining)},
		{"---"},
	}
	for _, view := range report.Views {
		rows = append(rows, []string{
			view.Label,
			cli.FormatCount(view.Used),
			cli.FormatCount(view.Remaining),
			cli.FormatCount(view.Total),
			cli.FormatPercent(view.PercentComplete),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Perspective", "Used", "Remaining", "Total", "Complete"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Life Progress: %s\n", cli.RenderPercentBar(life.PercentComplete, 50))

	if report.Parents != nil {
		fmt.Println()
		if f := report.Parents.Father; f != nil {
			fmt.Printf("  Days left with father: ~%s\n", cli.FormatCount(f.VisitDays))
		}
		if m := report.Parents.Mother; m != nil {
			fmt.Printf("  Days left with mother: ~%s\n", cli.FormatCount(m.VisitDays))
		}
	}

	for _, child := range report.Children {
		fmt.Printf("  %s: %s weeks until 12, %s until 18\n",
			childLabel(child), cli.FormatCount(child.WeeksTo12), cli.FormatCount(child.WeeksTo18))
	}

	fmt.Println()
	for _, line := range report.Narratives {
		fmt.Println(cli.RenderNarrative(line))
	}

	if !flagQuiet {
		book, err := quotes.Load(quotesPath())
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("  " + cli.RenderMuted(book.ForPercent(life.PercentComplete)))
	}

	fmt.Println()
	return nil
}

func childLabel(c engine.ChildMilestone) string {
	if c.Name != "" {
		return c.Name
	}
	return "Your child"
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/cli"
	"github.com/theirongolddev/memento/internal/engine"
)

var yearCmd = &cobra.Command{
	Use:   "year",
	Short: "Current-year overview with weekend planning",
	RunE:  runYear,
}

func init() {
	rootCmd.AddCommand(yearCmd)
}

func runYear(_ *cobra.Command, _ []string) error {
	_, today, err := loadConfig()
	if err != nil {
		return err
	}

	ys := engine.YearOf(today)
	freeDays := ys.FreeWeekendDays(engine.FreeFraction())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("YOUR %d OVERVIEW", today.Year())))
	fmt.Println()
	fmt.Printf("  Year Progress: %s\n\n", cli.RenderPercentBar(ys.ProgressPercent(), 50))

	rows := [][]string{
		{"Today", today.Format("January 2, 2006")},
		{"Days Remaining", cli.FormatNumber(int64(ys.DaysRemaining))},
		{"Weeks Remaining", fmt.Sprintf("%.1f", ys.WeeksRemaining)},
		{"Full Months Remaining", cli.FormatNumber(int64(ys.MonthsRemaining))},
		{"Weekends Remaining", fmt.Sprintf("%d (%d weekend days)", len(ys.Weekends), len(ys.Weekends)*engine.WeekendDaysPer)},
		{"Truly Free Weekend Days", fmt.Sprintf("~%d after obligations", freeDays)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if months := ys.MonthNamesRemaining(); len(months) > 0 {
		fmt.Printf("\n  Still ahead: %s\n", cli.RenderMuted(strings.Join(months, ", ")))
	}

	// Upcoming weekends grouped by month.
	fmt.Println()
	fmt.Println("  UPCOMING WEEKENDS")
	currentMonth := ""
	for _, w := range ys.Weekends {
		month := w.Saturday.Format("January")
		if month != currentMonth {
			fmt.Printf("  %s:\n", month)
			currentMonth = month
		}
		fmt.Printf("    • %s–%s\n", w.Saturday.Format("Jan 2"), w.Sunday.Format("2"))
	}

	// A gathering every ~8 truly free days is a realistic pace.
	gatherings := freeDays / 8
	if gatherings < 2 {
		gatherings = 2
	}
	fmt.Println()
	fmt.Printf("  Suggested family/friend gatherings this year: %d–%d\n", gatherings, gatherings+1)

	if !flagQuiet {
		fmt.Println()
		fmt.Println("  " + cli.RenderMuted("Make the most of your remaining weekends."))
	}

	fmt.Println()
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	RunE:  runConfigEdit,
}

func init() {
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n\n", flagConfig)

	fmt.Println("  [Life]")
	fmt.Printf("    Birthdate:          %s\n", cfg.Birthdate.Format("2006-01-02"))
	fmt.Printf("    Expected lifespan:  %d years\n", cfg.ExpectedLifespanYears)
	fmt.Printf("    Retirement age:     %d\n", cfg.RetirementAgeYears)
	fmt.Printf("    Vacation weeks/yr:  %.1f\n", cfg.VacationWeeksPerYear)
	fmt.Printf("    Health decline age: %d\n", cfg.HealthDeclineAge)
	fmt.Println()

	fmt.Println("  [Parents]")
	if !cfg.HasParents() {
		fmt.Println("    Not configured (parent-time view omitted)")
	} else {
		if cfg.FatherAgeYears != nil {
			fmt.Printf("    Father age: %d\n", *cfg.FatherAgeYears)
		}
		if cfg.MotherAgeYears != nil {
			fmt.Printf("    Mother age: %d\n", *cfg.MotherAgeYears)
		}
		fmt.Printf("    Visits/yr:  %.1f\n", cfg.ParentVisitsPerYear)
	}
	fmt.Println()

	fmt.Println("  [Children]")
	if len(cfg.Children) == 0 {
		fmt.Println("    Not configured (children view omitted)")
	} else {
		for _, child := range cfg.Children {
			name := child.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Printf("    %s: born %s\n", name, child.Birthdate.Format("2006-01-02"))
		}
	}
	fmt.Println()

	fmt.Println("  [Notifications]")
	fmt.Printf("    Time:  %s\n", cfg.NotificationTime)
	fmt.Printf("    Style: %s\n", cfg.NotificationStyle)
	fmt.Println()

	fmt.Println("  Run `memento setup` to reconfigure, `memento config edit` to edit by hand.")
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	if !config.Exists(flagConfig) {
		return fmt.Errorf("no config file at %s — run `memento setup` first", flagConfig)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
	}

	cmd := exec.Command(editor, flagConfig)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", editor, err)
	}
	return nil
}

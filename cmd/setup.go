package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	defaults := config.Default()
	if config.Exists(flagConfig) {
		if existing, err := config.Load(flagConfig, time.Now()); err == nil {
			defaults = existing
		}
	}

	var (
		birthdate  = defaults.Birthdate.Format("2006-01-02")
		lifespan   = strconv.Itoa(defaults.ExpectedLifespanYears)
		retirement = strconv.Itoa(defaults.RetirementAgeYears)
		vacation   = strconv.FormatFloat(defaults.VacationWeeksPerYear, 'f', -1, 64)
		fatherAge  string
		motherAge  string
		visits     = strconv.FormatFloat(defaults.ParentVisitsPerYear, 'f', -1, 64)
		notifyAt   = defaults.NotificationTime
		style      = defaults.NotificationStyle
	)
	if defaults.FatherAgeYears != nil {
		fatherAge = strconv.Itoa(*defaults.FatherAgeYears)
	}
	if defaults.MotherAgeYears != nil {
		motherAge = strconv.Itoa(*defaults.MotherAgeYears)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your birthdate").
				Description("YYYY-MM-DD").
				Value(&birthdate).
				Validate(validateDate),
			huh.NewInput().
				Title("Expected lifespan (years)").
				Value(&lifespan).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Retirement age").
				Value(&retirement).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Vacation weeks per year").
				Value(&vacation).
				Validate(validateNonNegativeFloat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Father's age").
				Description("Leave blank to skip the parent-time view for him").
				Value(&fatherAge).
				Validate(validateOptionalAge),
			huh.NewInput().
				Title("Mother's age").
				Description("Leave blank to skip the parent-time view for her").
				Value(&motherAge).
				Validate(validateOptionalAge),
			huh.NewInput().
				Title("Parent visits per year").
				Value(&visits).
				Validate(validateNonNegativeFloat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily notification time").
				Description("HH:MM, local clock").
				Value(&notifyAt).
				Validate(validateClock),
			huh.NewSelect[string]().
				Title("Notification style").
				Options(
					huh.NewOption("Motivational — what's still ahead", config.StyleMotivational),
					huh.NewOption("Sobering — what's already gone", config.StyleSobering),
				).
				Value(&style),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg := defaults
	cfg.Birthdate, _ = time.Parse("2006-01-02", birthdate)
	cfg.ExpectedLifespanYears, _ = strconv.Atoi(lifespan)
	cfg.RetirementAgeYears, _ = strconv.Atoi(retirement)
	cfg.VacationWeeksPerYear, _ = strconv.ParseFloat(vacation, 64)
	cfg.ParentVisitsPerYear, _ = strconv.ParseFloat(visits, 64)
	cfg.NotificationTime = notifyAt
	cfg.NotificationStyle = style

	cfg.FatherAgeYears = nil
	cfg.MotherAgeYears = nil
	if fatherAge != "" {
		age, _ := strconv.Atoi(fatherAge)
		cfg.FatherAgeYears = &age
	}
	if motherAge != "" {
		age, _ := strconv.Atoi(motherAge)
		cfg.MotherAgeYears = &age
	}

	if err := config.Save(cfg, flagConfig); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", flagConfig)
	fmt.Println("  Run `memento` for your summary, `memento daemon --detach` for daily reminders.")
	fmt.Println()
	return nil
}

func validateDate(s string) error {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	if d.After(time.Now()) {
		return fmt.Errorf("must not be in the future")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("expected a positive whole number")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return fmt.Errorf("expected a non-negative number")
	}
	return nil
}

func validateOptionalAge(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("expected a non-negative whole number, or blank")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

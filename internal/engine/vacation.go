package engine

import (
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// YearsToRetirement returns years left until the configured retirement
// age. Retirement in the past is a valid state and yields zero, never an
// error.
func YearsToRetirement(today time.Time, cfg config.Config) float64 {
	years := float64(cfg.RetirementAgeYears) - AgeYears(today, cfg)
	if years < 0 {
		return 0
	}
	return years
}

// VacationWeeksRemaining is the vacation allowance left over the remaining
// working years.
func VacationWeeksRemaining(today time.Time, cfg config.Config) float64 {
	return YearsToRetirement(today, cfg) * cfg.VacationWeeksPerYear
}

// Vacation frames remaining vacation against the allowance of a full
// working life (started-working age through retirement), so the
// percent-complete reads as "how much of your lifetime vacation is gone".
func Vacation(today time.Time, cfg config.Config) Perspective {
	workingYears := float64(cfg.RetirementAgeYears - StartedWorkingAge)
	if workingYears < 0 {
		workingYears = 0
	}

	total := workingYears * cfg.VacationWeeksPerYear
	remaining := VacationWeeksRemaining(today, cfg)
	if remaining > total {
		// Evaluation before the working life starts: the full allowance
		// still lies ahead.
		total = remaining
	}

	return newPerspective(KeyVacation, "Vacation Weeks", UnitWeeks,
		total-remaining, total)
}

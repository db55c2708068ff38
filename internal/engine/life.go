package engine

import (
	"math"
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// TotalWeeks returns the expected lifespan expressed in whole weeks.
func TotalWeeks(cfg config.Config) float64 {
	return math.Floor(float64(cfg.ExpectedLifespanYears) * DaysPerYear / DaysPerWeek)
}

// WeeksLived returns whole weeks lived since the birthdate, clamped to
// [0, TotalWeeks].
func WeeksLived(today time.Time, cfg config.Config) float64 {
	lived := math.Floor(float64(daysBetween(cfg.Birthdate, today)) / DaysPerWeek)
	if lived < 0 {
		return 0
	}
	if total := TotalWeeks(cfg); lived > total {
		return total
	}
	return lived
}

// AgeYears returns the current age in fractional years.
func AgeYears(today time.Time, cfg config.Config) float64 {
	age := yearsBetween(cfg.Birthdate, today)
	if age < 0 {
		return 0
	}
	return age
}

// TotalLife is the headline view: weeks lived against the full expected
// lifespan.
func TotalLife(today time.Time, cfg config.Config) Perspective {
	return newPerspective(KeyTotalLife, "Life in Weeks", UnitWeeks,
		WeeksLived(today, cfg), TotalWeeks(cfg))
}

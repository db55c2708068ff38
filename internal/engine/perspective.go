// Package engine computes the time perspectives memento is built around:
// pure functions from (today, Config) to quantitative views of remaining
// lifetime. Today is always passed explicitly so every calculation is
// deterministic and testable.
package engine

import (
	"math"
	"time"
)

// Unit is the measurement unit of one perspective.
type Unit string

const (
	UnitWeeks    Unit = "weeks"
	UnitDays     Unit = "days"
	UnitWeekends Unit = "weekends"
)

// Stable perspective keys, in report order. Renderers address views by key,
// never by position.
const (
	KeyTotalLife Key = "total_life"
	KeyFreeTime  Key = "free_time"
	KeyVacation  Key = "vacation"
	KeyParents   Key = "parent_time"
	KeyChildren  Key = "children"
	KeyHealth    Key = "health"
	KeyWeekends  Key = "weekends"
)

// Key names one perspective within a LifeReport.
type Key string

// Perspective is one quantitative view of remaining time. Invariants:
// Used + Remaining == Total, 0 <= PercentComplete <= 100, and
// PercentComplete is 0 whenever Total is 0.
type Perspective struct {
	Key             Key
	Label           string
	Unit            Unit
	Used            float64
	Remaining       float64
	Total           float64
	PercentComplete float64
}

// newPerspective builds a Perspective from fractional used/total values.
// Calculators keep full precision internally; rounding to whole units
// happens exactly once, here, so rounding error never compounds.
func newPerspective(key Key, label string, unit Unit, used, total float64) Perspective {
	total = math.Round(total)
	if total < 0 {
		total = 0
	}
	used = math.Round(used)
	if used < 0 {
		used = 0
	}
	if used > total {
		used = total
	}

	pct := 0.0
	if total > 0 {
		pct = 100 * used / total
	}

	return Perspective{
		Key:             key,
		Label:           label,
		Unit:            unit,
		Used:            used,
		Remaining:       total - used,
		Total:           total,
		PercentComplete: pct,
	}
}

// daysBetween returns whole calendar days from a to b, ignoring any
// time-of-day or zone component. Negative when b precedes a.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

// yearsBetween returns fractional years between two dates.
func yearsBetween(a, b time.Time) float64 {
	return float64(daysBetween(a, b)) / DaysPerYear
}

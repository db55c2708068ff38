package engine

import (
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// FreeTime scales the total-life view down to the fraction of each day
// that is truly free after sleep and work. The fractional weeks are kept
// at full precision and rounded once at the Perspective boundary.
func FreeTime(today time.Time, cfg config.Config) Perspective {
	fraction := FreeFraction()
	return newPerspective(KeyFreeTime, "Truly Free Time", UnitWeeks,
		WeeksLived(today, cfg)*fraction, TotalWeeks(cfg)*fraction)
}

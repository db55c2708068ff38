package engine

import (
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// WeekendDaysPer counts Saturday plus Sunday.
const WeekendDaysPer = 2

// Weekends counts one weekend per week of the expected lifespan.
func Weekends(today time.Time, cfg config.Config) Perspective {
	return newPerspective(KeyWeekends, "Weekends", UnitWeekends,
		WeeksLived(today, cfg), TotalWeeks(cfg))
}

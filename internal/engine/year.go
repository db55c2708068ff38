package engine

import "time"

// Weekend is one remaining Saturday/Sunday pair.
type Weekend struct {
	Saturday time.Time
	Sunday   time.Time
}

// YearStats is the current-year overview: progress, remaining time, and
// the concrete weekends left for planning.
type YearStats struct {
	Today           time.Time
	YearStart       time.Time
	YearEnd         time.Time
	DaysInYear      int
	DaysElapsed     int
	DaysRemaining   int
	WeeksRemaining  float64
	MonthsRemaining int
	Weekends        []Weekend
}

// YearOf computes the overview for the calendar year containing today.
func YearOf(today time.Time) YearStats {
	start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	end := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())

	ys := YearStats{
		Today:           today,
		YearStart:       start,
		YearEnd:         end,
		DaysInYear:      daysBetween(start, end) + 1,
		DaysElapsed:     daysBetween(start, today),
		DaysRemaining:   daysBetween(today, end),
		MonthsRemaining: 12 - int(today.Month()),
	}
	ys.WeeksRemaining = float64(ys.DaysRemaining) / DaysPerWeek
	ys.Weekends = remainingWeekends(today, end)
	return ys
}

// ProgressPercent is how much of the year has elapsed.
func (ys YearStats) ProgressPercent() float64 {
	if ys.DaysInYear == 0 {
		return 0
	}
	return 100 * float64(ys.DaysElapsed) / float64(ys.DaysInYear)
}

// MonthNamesRemaining lists the full months still ahead this year.
func (ys YearStats) MonthNamesRemaining() []string {
	var names []string
	for m := ys.Today.Month() + 1; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}

// FreeWeekendDays estimates truly free weekend days left this year, since
// sleep and chores do not pause on Saturdays.
func (ys YearStats) FreeWeekendDays(freeFraction float64) int {
	return int(float64(len(ys.Weekends)*WeekendDaysPer) * freeFraction)
}

// remainingWeekends collects every full Sat/Sun pair from the first
// upcoming Saturday through the end of the year. A Saturday "today" counts
// as upcoming.
func remainingWeekends(today, yearEnd time.Time) []Weekend {
	daysUntilSaturday := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	saturday := today.AddDate(0, 0, daysUntilSaturday)

	var weekends []Weekend
	for !saturday.After(yearEnd) {
		sunday := saturday.AddDate(0, 0, 1)
		if sunday.After(yearEnd) {
			break
		}
		weekends = append(weekends, Weekend{Saturday: saturday, Sunday: sunday})
		saturday = saturday.AddDate(0, 0, 7)
	}
	return weekends
}

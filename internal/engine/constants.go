package engine

// Reference constants shared by the calculators. These are engine
// parameters, not user configuration: the README asserts them as fixed
// facts, so they live here as named, documented values rather than inlined
// numbers.
const (
	DaysPerYear = 365.25
	DaysPerWeek = 7

	// Free-time model: hours of each day consumed by obligations.
	SleepHoursPerDay = 9.0
	WorkHoursPerDay  = 8.0

	// Age at which full-time work is assumed to begin. Frames the vacation
	// view's total.
	StartedWorkingAge = 22

	// Assumed life expectancy for parents, distinct from the user's own
	// expected_lifespan.
	ParentLifespanYears = 80

	// Age at which co-residence with parents is assumed to end. Drives the
	// "already spent" narrative.
	CoResidenceEndAge = 18

	// Children milestone ages: most shared time is gone by 12, the rest by 18.
	ChildMilestoneAge    = 12
	ChildIndependenceAge = 18
)

// FreeHoursPerDay is the truly free portion of a day after obligations.
func FreeHoursPerDay() float64 {
	free := 24 - SleepHoursPerDay - WorkHoursPerDay
	if free < 0 {
		return 0
	}
	return free
}

// FreeFraction is the fraction of each day that is truly free.
func FreeFraction() float64 {
	return FreeHoursPerDay() / 24
}

package engine

import (
	"math"
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// ChildMilestone holds the countdown for a single child.
type ChildMilestone struct {
	Name      string
	AgeYears  float64
	WeeksTo12 float64 // until the "75% of shared time" cutoff, 0 once passed
	WeeksTo18 float64 // until independence, 0 once passed
}

func milestoneFor(today time.Time, child config.Child) ChildMilestone {
	lived := float64(daysBetween(child.Birthdate, today)) / DaysPerWeek
	if lived < 0 {
		lived = 0
	}

	weeksTo := func(ageYears float64) float64 {
		w := ageYears*DaysPerYear/DaysPerWeek - lived
		if w < 0 {
			return 0
		}
		return w
	}

	return ChildMilestone{
		Name:      child.Name,
		AgeYears:  yearsBetween(child.Birthdate, today),
		WeeksTo12: weeksTo(ChildMilestoneAge),
		WeeksTo18: weeksTo(ChildIndependenceAge),
	}
}

// Children counts down the weeks until each configured child turns 12 and
// 18. The perspective tracks the child closest to independence, mirroring
// the parent-time binding-constraint policy. Returns ok=false when no child
// is configured, which omits the view.
func Children(today time.Time, cfg config.Config) (Perspective, []ChildMilestone, bool) {
	if len(cfg.Children) == 0 {
		return Perspective{}, nil, false
	}

	milestones := make([]ChildMilestone, 0, len(cfg.Children))
	binding := math.Inf(1)
	for _, child := range cfg.Children {
		m := milestoneFor(today, child)
		milestones = append(milestones, m)
		if m.WeeksTo18 < binding {
			binding = m.WeeksTo18
		}
	}

	total := ChildIndependenceAge * DaysPerYear / DaysPerWeek
	p := newPerspective(KeyChildren, "Weeks Until They're Grown", UnitWeeks,
		total-binding, total)
	return p, milestones, true
}

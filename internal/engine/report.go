package engine

import (
	"fmt"
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// LifeReport is the engine's sole public output: every present perspective
// in fixed order, the per-entity breakdowns, and the derived narrative
// lines. It is recomputed fresh on each invocation and never cached.
type LifeReport struct {
	Today time.Time
	Views []Perspective

	Parents  *ParentBreakdown // nil when the parent-time view is omitted
	Children []ChildMilestone // empty when the children view is omitted
	Health   HealthSplit

	Narratives []string
}

// View returns the perspective with the given key, if present.
func (r LifeReport) View(key Key) (Perspective, bool) {
	for _, p := range r.Views {
		if p.Key == key {
			return p, true
		}
	}
	return Perspective{}, false
}

// Assemble runs every calculator in fixed order, omitting views whose
// required configuration is absent, and derives the narrative lines from
// the already-produced values. Given a validated Config it never fails.
func Assemble(today time.Time, cfg config.Config) LifeReport {
	report := LifeReport{Today: today}

	life := TotalLife(today, cfg)
	report.Views = append(report.Views, life, FreeTime(today, cfg), Vacation(today, cfg))

	if p, bd, ok := Parents(today, cfg); ok {
		report.Views = append(report.Views, p)
		report.Parents = &bd
	}

	if p, milestones, ok := Children(today, cfg); ok {
		report.Views = append(report.Views, p)
		report.Children = milestones
	}

	healthView, split := Health(today, cfg)
	report.Health = split
	report.Views = append(report.Views, healthView, Weekends(today, cfg))

	report.Narratives = narratives(report)
	return report
}

// narratives derives the human sentences purely from produced values.
func narratives(r LifeReport) []string {
	var lines []string

	if life, ok := r.View(KeyTotalLife); ok {
		lines = append(lines, fmt.Sprintf(
			"%.1f%% of your expected life is behind you. %.0f weeks remain.",
			life.PercentComplete, life.Remaining))
	}

	if parents, ok := r.View(KeyParents); ok && r.Parents != nil {
		line := fmt.Sprintf("~%.0f days left with your parents", parents.Remaining)
		if r.Parents.CohabFractionSpent >= 1 {
			line += " — the everyday years with them are already spent."
		} else {
			line += fmt.Sprintf(" — %.0f%% of the everyday years with them are gone.",
				100*r.Parents.CohabFractionSpent)
		}
		lines = append(lines, line)
	}

	if weekends, ok := r.View(KeyWeekends); ok {
		lines = append(lines, fmt.Sprintf(
			"~%.0f free Saturdays and Sundays still ahead.", weekends.Remaining))
	}

	return lines
}

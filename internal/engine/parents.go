package engine

import (
	"math"
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// ParentOutlook is the estimate for a single parent.
type ParentOutlook struct {
	Role     string // "father" or "mother"
	AgeYears int

	// DaysLeft is the raw survival estimate against the reference lifespan.
	DaysLeft float64

	// VisitDays is how many of those days are actually seen, with visits
	// as the binding constraint rather than raw survival.
	VisitDays float64
}

// ParentBreakdown carries the per-parent figures alongside the binding
// (minimum) outlook used for the perspective itself.
type ParentBreakdown struct {
	Father  *ParentOutlook
	Mother  *ParentOutlook
	Binding ParentOutlook

	// CohabFractionSpent is the share of expected childhood co-residence
	// days already elapsed; 1.0 for anyone past the co-residence end age.
	CohabFractionSpent float64
}

func outlook(role string, ageYears int, visitsPerYear float64) ParentOutlook {
	yearsLeft := float64(ParentLifespanYears - ageYears)
	if yearsLeft < 0 {
		yearsLeft = 0
	}
	daysLeft := yearsLeft * DaysPerYear
	return ParentOutlook{
		Role:      role,
		AgeYears:  ageYears,
		DaysLeft:  daysLeft,
		VisitDays: daysLeft / DaysPerYear * visitsPerYear,
	}
}

// Parents estimates remaining in-person days with each configured parent.
// With both parents configured the perspective reports the minimum across
// them: the binding constraint is whichever parent has less time left.
// Returns ok=false when neither parent is configured, which omits the view.
func Parents(today time.Time, cfg config.Config) (Perspective, ParentBreakdown, bool) {
	if !cfg.HasParents() {
		return Perspective{}, ParentBreakdown{}, false
	}

	var bd ParentBreakdown
	if cfg.FatherAgeYears != nil {
		o := outlook("father", *cfg.FatherAgeYears, cfg.ParentVisitsPerYear)
		bd.Father = &o
	}
	if cfg.MotherAgeYears != nil {
		o := outlook("mother", *cfg.MotherAgeYears, cfg.ParentVisitsPerYear)
		bd.Mother = &o
	}

	switch {
	case bd.Father != nil && bd.Mother != nil:
		bd.Binding = *bd.Father
		if bd.Mother.VisitDays < bd.Father.VisitDays {
			bd.Binding = *bd.Mother
		}
	case bd.Father != nil:
		bd.Binding = *bd.Father
	default:
		bd.Binding = *bd.Mother
	}

	age := AgeYears(today, cfg)
	cohabYears := math.Min(age, CoResidenceEndAge)
	bd.CohabFractionSpent = cohabYears / CoResidenceEndAge

	// Days already spent together: full-time co-residence through childhood,
	// visit-bounded contact after it.
	used := cohabYears * DaysPerYear
	if age > CoResidenceEndAge {
		used += (age - CoResidenceEndAge) * cfg.ParentVisitsPerYear
	}

	p := newPerspective(KeyParents, "Days With Parents", UnitDays,
		used, used+bd.Binding.VisitDays)
	return p, bd, true
}

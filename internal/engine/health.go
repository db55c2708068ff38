package engine

import (
	"math"
	"time"

	"github.com/theirongolddev/memento/internal/config"
)

// HealthSplit partitions remaining weeks at the health-decline age.
type HealthSplit struct {
	PrimeRemaining     float64
	DecliningRemaining float64
}

// Health splits the lifespan into "prime" weeks before the configured
// health-decline age and "declining" weeks after it, using the same
// clamped week arithmetic as the total-life view. The perspective itself
// tracks prime weeks; the split carries the declining bucket.
func Health(today time.Time, cfg config.Config) (Perspective, HealthSplit) {
	primeYears := math.Min(float64(cfg.HealthDeclineAge), float64(cfg.ExpectedLifespanYears))
	primeTotal := math.Floor(primeYears * DaysPerYear / DaysPerWeek)

	lived := WeeksLived(today, cfg)
	primeUsed := math.Min(lived, primeTotal)

	decliningTotal := TotalWeeks(cfg) - primeTotal
	decliningUsed := math.Min(math.Max(lived-primeTotal, 0), decliningTotal)

	p := newPerspective(KeyHealth, "Prime Weeks", UnitWeeks, primeUsed, primeTotal)
	return p, HealthSplit{
		PrimeRemaining:     p.Remaining,
		DecliningRemaining: decliningTotal - decliningUsed,
	}
}

package calculation

import (
	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Simulation holds the raw balance sequences of one run. All three have the same length
// and the same Year at every index.
type Simulation struct {
	FIRE    []domain.Point
	SemiFI  []domain.Point
	CoastFI []domain.Point
}

// contributionRule decides whether a trajectory adds this year's contribution.
// reached is true once the trajectory has met its target at least once.
type contributionRule func(balance decimal.Decimal, reached bool) bool

type track struct {
	target      decimal.Decimal
	contributes contributionRule
	balance     decimal.Decimal
	reached     bool
	points      []domain.Point
}

func (t *track) record(year int) {
	t.points = append(t.points, domain.Point{Year: year, Balance: t.balance})
	if !t.reached && meetsTarget(t.balance, t.target) {
		t.reached = true
	}
}

func (t *track) grow(contribution, growthFactor decimal.Decimal) {
	if t.contributes(t.balance, t.reached) {
		t.balance = t.balance.Add(contribution)
	}
	t.balance = t.balance.Mul(growthFactor)
}

// meetsTarget is the single threshold test shared by the simulator and the detector.
func meetsTarget(balance, target decimal.Decimal) bool {
	return balance.GreaterThanOrEqual(target)
}

// SimulateTrajectories advances the FIRE, Semi-FI and Coast FI balances year by year.
// Start-of-year balances are recorded before growth, so index 0 is CurrentSavings.
// The run ends after MaxProjectionYears points or as soon as every trajectory has met its target.
func SimulateTrajectories(in domain.ProjectionInput, targets domain.Targets, realRate decimal.Decimal) Simulation {
	contribution := in.AnnualContribution()
	growthFactor := decimalOne.Add(realRate)

	fire := &track{
		target:      targets.FireTarget,
		contributes: func(decimal.Decimal, bool) bool { return true },
	}
	semiFi := &track{
		target: targets.SemiFiTarget,
		contributes: func(balance decimal.Decimal, _ bool) bool {
			return balance.LessThan(targets.SemiFiTarget)
		},
	}
	coastFi := &track{
		target:      targets.CoastTarget,
		contributes: func(_ decimal.Decimal, reached bool) bool { return !reached },
	}
	tracks := []*track{fire, semiFi, coastFi}
	for _, t := range tracks {
		t.balance = in.CurrentSavings
		t.points = make([]domain.Point, 0, domain.MaxProjectionYears)
	}

	for year := 0; year < domain.MaxProjectionYears; year++ {
		allReached := true
		for _, t := range tracks {
			t.record(in.Age + year)
			allReached = allReached && t.reached
		}
		if allReached {
			break
		}
		for _, t := range tracks {
			t.grow(contribution, growthFactor)
		}
	}

	return Simulation{FIRE: fire.points, SemiFI: semiFi.points, CoastFI: coastFi.points}
}

package output

import (
	"github.com/shopspring/decimal"

	"github.com/fipath/fi-calculator/internal/domain"
	pkgdecimal "github.com/fipath/fi-calculator/pkg/decimal"
)

// RealRatePlaces is the scale of serialized real rates.
const RealRatePlaces = 6

func cents(d decimal.Decimal) decimal.Decimal {
	return pkgdecimal.NewMoney(d).Round().Decimal
}

// RoundedResult returns a copy of result for serialization: money in cents and the
// real rate at RealRatePlaces. Engine balances grow in scale every simulated year,
// so anything leaving the process goes through here. result is not modified.
func RoundedResult(result *domain.ProjectionResult) *domain.ProjectionResult {
	out := *result
	out.RealRate = result.RealRate.Round(RealRatePlaces)
	out.Targets = domain.Targets{
		FireTargetBase:    cents(result.Targets.FireTargetBase),
		SemiFiTarget:      cents(result.Targets.SemiFiTarget),
		CashCushionTarget: cents(result.Targets.CashCushionTarget),
		FireTarget:        cents(result.Targets.FireTarget),
		CoastTarget:       cents(result.Targets.CoastTarget),
	}
	out.FIRE = roundedTrajectory(result.FIRE)
	out.SemiFI = roundedTrajectory(result.SemiFI)
	out.CoastFI = roundedTrajectory(result.CoastFI)
	return &out
}

func roundedTrajectory(tr domain.Trajectory) domain.Trajectory {
	out := tr
	out.Target = cents(tr.Target)
	out.Points = make([]domain.Point, len(tr.Points))
	for i, p := range tr.Points {
		out.Points[i] = domain.Point{Year: p.Year, Balance: cents(p.Balance)}
	}
	return out
}

// RoundedSensitivity is RoundedResult for a sweep.
func RoundedSensitivity(a *domain.SensitivityAnalysis) *domain.SensitivityAnalysis {
	out := *a
	out.Points = make([]domain.SensitivityPoint, len(a.Points))
	for i, p := range a.Points {
		p.FireTarget = cents(p.FireTarget)
		p.RealRate = p.RealRate.Round(RealRatePlaces)
		out.Points[i] = p
	}
	return &out
}

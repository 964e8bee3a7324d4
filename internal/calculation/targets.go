package calculation

import (
	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne = decimal.NewFromInt(1)

	// SemiFiFraction is the share of the base FIRE target that counts as Semi-FI.
	SemiFiFraction = decimal.NewFromFloat(0.6)
	// YieldShieldRate is the assumed portfolio yield offsetting expenses in the cushion.
	YieldShieldRate = decimal.NewFromFloat(0.04)
	// CashCushionYears is the number of years of net expenses held as a downturn buffer.
	CashCushionYears = decimal.NewFromInt(5)
)

// RealRate converts the nominal return into a real return with the Fisher relation.
func RealRate(in domain.ProjectionInput) decimal.Decimal {
	return decimalOne.Add(in.NominalRate()).Div(decimalOne.Add(in.Inflation())).Sub(decimalOne)
}

// AnnuityPresentValue returns the value today of paying `payment` once a year for `years`
// years discounted at `rate`. A zero rate uses the closed-form limit payment × years.
func AnnuityPresentValue(payment, rate decimal.Decimal, years int) decimal.Decimal {
	n := decimal.NewFromInt(int64(years))
	if rate.IsZero() {
		return payment.Mul(n)
	}
	growth := decimalOne.Add(rate).Pow(n)
	discount := decimalOne.Div(growth)
	return payment.Mul(decimalOne.Sub(discount)).Div(rate)
}

// DiscountToPresent discounts a future value `years` years back at `rate`.
func DiscountToPresent(value, rate decimal.Decimal, years int) decimal.Decimal {
	if years == 0 {
		return value
	}
	return value.Div(decimalOne.Add(rate).Pow(decimal.NewFromInt(int64(years))))
}

// CalculateTargets derives the milestone thresholds and the real rate for an input.
// A non-positive retirement horizon is reported as an input error.
func CalculateTargets(in domain.ProjectionInput) (domain.Targets, decimal.Decimal, error) {
	horizon := in.Horizon()
	if horizon <= 0 {
		return domain.Targets{}, decimal.Zero, domain.NewInputError("retirement_age", "leaves no retirement horizon before life expectancy")
	}

	realRate := RealRate(in)
	base := AnnuityPresentValue(in.Expenses, realRate, horizon)
	semiFi := base.Mul(SemiFiFraction)

	// Not floored at zero: a large yield shield produces a negative cushion.
	cushion := in.Expenses.Sub(semiFi.Mul(YieldShieldRate)).Mul(CashCushionYears)

	return domain.Targets{
		FireTargetBase:    base,
		SemiFiTarget:      semiFi,
		CashCushionTarget: cushion,
		FireTarget:        base.Add(cushion),
		CoastTarget:       DiscountToPresent(base, realRate, in.AccumulationYears()),
	}, realRate, nil
}

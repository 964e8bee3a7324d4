package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// LifeExpectancyAge is the age through which the FIRE target must fund expenses.
	LifeExpectancyAge = 90
	// MaxProjectionYears caps every simulation.
	MaxProjectionYears = 100

	MinAge = 18
	MaxAge = 100
)

var decimalHundred = decimal.NewFromInt(100)

// ProjectionInput is the complete set of personal-finance inputs for one projection.
// Rates are expressed in percent (8 means 8%).
type ProjectionInput struct {
	Income         decimal.Decimal `yaml:"income" json:"income"`                   // annual, post-tax
	SavingsRate    decimal.Decimal `yaml:"savings_rate" json:"savings_rate"`       // percent of income saved
	Expenses       decimal.Decimal `yaml:"expenses" json:"expenses"`               // annual, today's money
	CurrentSavings decimal.Decimal `yaml:"current_savings" json:"current_savings"` // starting portfolio
	Age            int             `yaml:"age" json:"age"`
	ReturnRate     decimal.Decimal `yaml:"return_rate" json:"return_rate"` // nominal
	RetirementAge  int             `yaml:"retirement_age" json:"retirement_age"`
	InflationRate  decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
}

// AnnualContribution is the amount saved each year.
func (in ProjectionInput) AnnualContribution() decimal.Decimal {
	return in.Income.Mul(in.SavingsRate).Div(decimalHundred)
}

// NominalRate returns the return rate as a fraction.
func (in ProjectionInput) NominalRate() decimal.Decimal {
	return in.ReturnRate.Div(decimalHundred)
}

// Inflation returns the inflation rate as a fraction.
func (in ProjectionInput) Inflation() decimal.Decimal {
	return in.InflationRate.Div(decimalHundred)
}

// Horizon is the number of retirement years the FIRE target has to fund.
func (in ProjectionInput) Horizon() int {
	return LifeExpectancyAge - in.RetirementAge
}

// AccumulationYears is the time left until the target retirement age.
func (in ProjectionInput) AccumulationYears() int {
	return in.RetirementAge - in.Age
}

// Key returns a string that is equal for two inputs exactly when their values are equal.
// Decimal values are normalized, so 8 and 8.00 produce the same key.
func (in ProjectionInput) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s|%s|%d|%s|%d|%s",
		in.Income.String(),
		in.SavingsRate.String(),
		in.Expenses.String(),
		in.CurrentSavings.String(),
		in.Age,
		in.ReturnRate.String(),
		in.RetirementAge,
		in.InflationRate.String(),
	)
	return b.String()
}

// Validate checks the structural domain constraints of the input.
// Every returned error wraps ErrInvalidInput.
func (in ProjectionInput) Validate() error {
	if in.Income.IsNegative() {
		return NewInputError("income", "cannot be negative")
	}
	if in.SavingsRate.IsNegative() || in.SavingsRate.GreaterThan(decimalHundred) {
		return NewInputError("savings_rate", "must be between 0 and 100")
	}
	if in.Expenses.IsNegative() {
		return NewInputError("expenses", "cannot be negative")
	}
	if in.CurrentSavings.IsNegative() {
		return NewInputError("current_savings", "cannot be negative")
	}
	if in.Age < MinAge || in.Age > MaxAge {
		return NewInputError("age", fmt.Sprintf("must be between %d and %d", MinAge, MaxAge))
	}
	if in.ReturnRate.LessThanOrEqual(decimalHundred.Neg()) {
		return NewInputError("return_rate", "must be greater than -100")
	}
	if in.InflationRate.LessThanOrEqual(decimalHundred.Neg()) {
		return NewInputError("inflation_rate", "must be greater than -100")
	}
	if in.RetirementAge < in.Age {
		return NewInputError("retirement_age", "cannot be before current age")
	}
	if in.Horizon() <= 0 {
		return NewInputError("retirement_age", fmt.Sprintf("must be below life expectancy age %d", LifeExpectancyAge))
	}
	return nil
}

package domain

import (
	"github.com/shopspring/decimal"
)

// SensitivityParameter describes one input swept across a range.
type SensitivityParameter struct {
	Name     string          `yaml:"name" json:"name"`
	MinValue decimal.Decimal `yaml:"min_value" json:"min_value"`
	MaxValue decimal.Decimal `yaml:"max_value" json:"max_value"`
	Steps    int             `yaml:"steps" json:"steps"`
}

// SensitivityPoint is the outcome of one forward simulation in a sweep.
type SensitivityPoint struct {
	Value      decimal.Decimal `json:"value"`
	FireAge    *int            `json:"fire_age"`
	SemiFiAge  *int            `json:"semi_fi_age"`
	CoastFiAge *int            `json:"coast_fi_age"`
	FireTarget decimal.Decimal `json:"fire_target"`
	RealRate   decimal.Decimal `json:"real_rate"`
	Error      string          `json:"error,omitempty"`
}

// SensitivityAnalysis is a full single-parameter sweep.
type SensitivityAnalysis struct {
	Base      ProjectionInput      `json:"base"`
	Parameter SensitivityParameter `json:"parameter"`
	Points    []SensitivityPoint   `json:"points"`
}

// Sweepable parameter names.
const (
	ParamReturnRate    = "return_rate"
	ParamSavingsRate   = "savings_rate"
	ParamInflationRate = "inflation_rate"
	ParamExpenses      = "expenses"
	ParamIncome        = "income"
	ParamRetirementAge = "retirement_age"
)

// SensitivityParameterNames lists the parameters a sweep may vary.
var SensitivityParameterNames = []string{
	ParamReturnRate,
	ParamSavingsRate,
	ParamInflationRate,
	ParamExpenses,
	ParamIncome,
	ParamRetirementAge,
}

// WithParameter returns a copy of the input with the named parameter replaced.
// Integer parameters are truncated toward zero.
func (in ProjectionInput) WithParameter(name string, value decimal.Decimal) (ProjectionInput, error) {
	out := in
	switch name {
	case ParamReturnRate:
		out.ReturnRate = value
	case ParamSavingsRate:
		out.SavingsRate = value
	case ParamInflationRate:
		out.InflationRate = value
	case ParamExpenses:
		out.Expenses = value
	case ParamIncome:
		out.Income = value
	case ParamRetirementAge:
		out.RetirementAge = int(value.IntPart())
	default:
		return in, NewInputError("parameter", "unknown sensitivity parameter "+name)
	}
	return out, nil
}

package calculation

import (
	"math"
	"testing"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		Income:         decimal.NewFromInt(65000),
		SavingsRate:    decimal.NewFromInt(40),
		Expenses:       decimal.NewFromInt(40000),
		CurrentSavings: decimal.Zero,
		Age:            25,
		ReturnRate:     decimal.NewFromInt(8),
		RetirementAge:  50,
		InflationRate:  decimal.NewFromInt(2),
	}
}

func assertClose(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	assert.True(t, actual.Sub(want).Abs().LessThan(decimal.NewFromFloat(0.01)),
		append([]interface{}{"expected %s, got %s", want.StringFixed(4), actual.StringFixed(4)}, msgAndArgs...)...)
}

func TestRealRate(t *testing.T) {
	tests := []struct {
		name      string
		nominal   int64
		inflation int64
		expected  string
	}{
		{"scenario", 8, 2, "0.0588235294117647"},
		{"equal rates", 3, 3, "0"},
		{"negative real", 2, 5, "-0.0285714285714286"},
		{"no inflation", 7, 0, "0.07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioInput()
			in.ReturnRate = decimal.NewFromInt(tt.nominal)
			in.InflationRate = decimal.NewFromInt(tt.inflation)
			got := RealRate(in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got.String())
		})
	}
}

func TestAnnuityPresentValue(t *testing.T) {
	t.Run("zero rate uses payment times years", func(t *testing.T) {
		pv := AnnuityPresentValue(decimal.NewFromInt(30000), decimal.Zero, 30)
		assert.True(t, pv.Equal(decimal.NewFromInt(900000)))
	})

	t.Run("matches closed form", func(t *testing.T) {
		rate := 0.05
		pv := AnnuityPresentValue(decimal.NewFromInt(1000), decimal.NewFromFloat(rate), 10)
		expected := 1000 * (1 - math.Pow(1+rate, -10)) / rate
		assert.InDelta(t, expected, pv.InexactFloat64(), 0.0001)
	})

	t.Run("negative rate is worth more than payments", func(t *testing.T) {
		pv := AnnuityPresentValue(decimal.NewFromInt(1000), decimal.NewFromFloat(-0.02), 10)
		assert.True(t, pv.GreaterThan(decimal.NewFromInt(10000)))
	})
}

func TestCalculateTargets_Scenario(t *testing.T) {
	targets, realRate, err := CalculateTargets(scenarioInput())
	require.NoError(t, err)

	assert.InDelta(t, 0.0588, realRate.InexactFloat64(), 0.0001)

	r := realRate.InexactFloat64()
	formula := 40000 * (1 - math.Pow(1+r, -40)) / r
	assert.InDelta(t, formula, targets.FireTargetBase.InexactFloat64(), 0.01)

	assertClose(t, "610886.0739934238", targets.FireTargetBase)
	assertClose(t, "366531.6443960543", targets.SemiFiTarget)
	assertClose(t, "126693.6711207891", targets.CashCushionTarget)
	assertClose(t, "737579.7451142129", targets.FireTarget)
	assertClose(t, "146342.5545414709", targets.CoastTarget)
}

func TestCalculateTargets_Invariants(t *testing.T) {
	for _, expenses := range []int64{0, 1000, 30000, 40000, 250000} {
		in := scenarioInput()
		in.Expenses = decimal.NewFromInt(expenses)

		targets, _, err := CalculateTargets(in)
		require.NoError(t, err)

		assert.True(t, targets.SemiFiTarget.Equal(targets.FireTargetBase.Mul(decimal.NewFromFloat(0.6))))
		assert.True(t, targets.FireTarget.Equal(targets.FireTargetBase.Add(targets.CashCushionTarget)))
		if !targets.CashCushionTarget.IsNegative() {
			assert.True(t, targets.FireTarget.GreaterThanOrEqual(targets.FireTargetBase))
		}
		assert.True(t, targets.CoastTarget.LessThanOrEqual(targets.FireTargetBase), "positive real rate discounts the coast target")
	}
}

func TestCalculateTargets_ZeroRealRate(t *testing.T) {
	in := scenarioInput()
	in.ReturnRate = decimal.NewFromInt(3)
	in.InflationRate = decimal.NewFromInt(3)
	in.Expenses = decimal.NewFromInt(30000)
	in.RetirementAge = 60

	targets, realRate, err := CalculateTargets(in)
	require.NoError(t, err)

	assert.True(t, realRate.IsZero())
	assert.True(t, targets.FireTargetBase.Equal(decimal.NewFromInt(30000*30)), "got %s", targets.FireTargetBase)
	assert.True(t, targets.CoastTarget.Equal(targets.FireTargetBase))
	assert.True(t, targets.CashCushionTarget.Equal(decimal.NewFromInt(42000)))
}

func TestCalculateTargets_NegativeCushionIsNotClamped(t *testing.T) {
	in := scenarioInput()
	in.ReturnRate = decimal.NewFromInt(2)
	in.InflationRate = decimal.NewFromInt(5)
	in.RetirementAge = 60

	targets, _, err := CalculateTargets(in)
	require.NoError(t, err)

	assert.True(t, targets.CashCushionTarget.IsNegative())
	assertClose(t, "-32851.1196", targets.CashCushionTarget)
	assert.True(t, targets.FireTarget.LessThan(targets.FireTargetBase))
}

func TestCalculateTargets_RetirementEqualsAge(t *testing.T) {
	in := scenarioInput()
	in.Age = 40
	in.RetirementAge = 40

	targets, _, err := CalculateTargets(in)
	require.NoError(t, err)
	assert.True(t, targets.CoastTarget.Equal(targets.FireTargetBase))
}

func TestCalculateTargets_DegenerateHorizon(t *testing.T) {
	in := scenarioInput()
	in.RetirementAge = 90

	_, _, err := CalculateTargets(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package calculation

import (
	"context"
	"testing"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepValues(t *testing.T) {
	values, err := SweepValues(domain.SensitivityParameter{
		Name: domain.ParamReturnRate, MinValue: decimal.NewFromInt(4), MaxValue: decimal.NewFromInt(10), Steps: 4,
	})
	require.NoError(t, err)
	require.Len(t, values, 4)
	for i, want := range []int64{4, 6, 8, 10} {
		assert.True(t, values[i].Equal(decimal.NewFromInt(want)), "value %d = %s", i, values[i])
	}

	values, err = SweepValues(domain.SensitivityParameter{MinValue: decimal.NewFromInt(5), MaxValue: decimal.NewFromInt(9), Steps: 1})
	require.NoError(t, err)
	assert.Len(t, values, 1)

	_, err = SweepValues(domain.SensitivityParameter{MinValue: decimal.NewFromInt(5), MaxValue: decimal.NewFromInt(1), Steps: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = SweepValues(domain.SensitivityParameter{Steps: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunSensitivity_ReturnRate(t *testing.T) {
	param := domain.SensitivityParameter{
		Name: domain.ParamReturnRate, MinValue: decimal.NewFromInt(4), MaxValue: decimal.NewFromInt(10), Steps: 7,
	}
	analysis, err := RunSensitivity(context.Background(), NewProjectionEngine(), scenarioInput(), param)
	require.NoError(t, err)
	require.Len(t, analysis.Points, 7)

	// The 8% point matches a direct projection.
	direct, err := NewProjectionEngine().Project(scenarioInput())
	require.NoError(t, err)
	eight := analysis.Points[4]
	assert.True(t, eight.Value.Equal(decimal.NewFromInt(8)))
	require.NotNil(t, eight.CoastFiAge)
	assert.Equal(t, *direct.CoastFiAge, *eight.CoastFiAge)
	assert.Equal(t, *direct.FireAge, *eight.FireAge)

	for i := 1; i < len(analysis.Points); i++ {
		prev, cur := analysis.Points[i-1], analysis.Points[i]
		assert.Empty(t, cur.Error)
		assert.True(t, cur.RealRate.GreaterThan(prev.RealRate))
		if prev.FireAge != nil && cur.FireAge != nil {
			assert.LessOrEqual(t, *cur.FireAge, *prev.FireAge+1, "higher returns never delay FIRE by much")
		}
	}
}

func TestRunSensitivity_InvalidPointsCarryErrors(t *testing.T) {
	param := domain.SensitivityParameter{
		Name: domain.ParamRetirementAge, MinValue: decimal.NewFromInt(80), MaxValue: decimal.NewFromInt(95), Steps: 4,
	}
	analysis, err := RunSensitivity(context.Background(), NewProjectionEngine(), scenarioInput(), param)
	require.NoError(t, err)

	assert.Empty(t, analysis.Points[0].Error)
	assert.Empty(t, analysis.Points[1].Error)
	assert.Contains(t, analysis.Points[2].Error, "retirement_age")
	assert.Contains(t, analysis.Points[3].Error, "retirement_age")
	assert.Nil(t, analysis.Points[3].FireAge)
}

func TestRunSensitivity_UnknownParameter(t *testing.T) {
	_, err := RunSensitivity(context.Background(), NewProjectionEngine(), scenarioInput(),
		domain.SensitivityParameter{Name: "luck", Steps: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunSensitivity_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunSensitivity(ctx, NewProjectionEngine(), scenarioInput(), domain.SensitivityParameter{
		Name: domain.ParamSavingsRate, MinValue: decimal.NewFromInt(10), MaxValue: decimal.NewFromInt(50), Steps: 5,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

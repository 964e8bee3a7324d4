package calculation

import (
	"testing"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(balances ...int64) []domain.Point {
	out := make([]domain.Point, len(balances))
	for i, b := range balances {
		out[i] = domain.Point{Year: 30 + i, Balance: decimal.NewFromInt(b)}
	}
	return out
}

func TestFirstCrossing(t *testing.T) {
	tests := []struct {
		name      string
		points    []domain.Point
		threshold int64
		expected  *int
	}{
		{"reached at start", points(100, 200), 100, intPtr(0)},
		{"reached later", points(10, 50, 99, 100, 150), 100, intPtr(3)},
		{"equal counts as reached", points(0, 100), 100, intPtr(1)},
		{"never reached", points(1, 2, 3), 100, nil},
		{"empty sequence", nil, 0, nil},
		{"first of several crossings", points(0, 150, 50, 200), 100, intPtr(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstCrossing(tt.points, decimal.NewFromInt(tt.threshold))
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestAgeAt(t *testing.T) {
	assert.Nil(t, AgeAt(25, nil))
	got := AgeAt(25, intPtr(5))
	require.NotNil(t, got)
	assert.Equal(t, 30, *got)
}

func TestAssembleResult_FireBaseBeforeFire(t *testing.T) {
	in := scenarioInput()
	targets, realRate, err := CalculateTargets(in)
	require.NoError(t, err)

	res := assembleResult(in, targets, realRate, SimulateTrajectories(in, targets, realRate))

	require.NotNil(t, res.FireBaseAge)
	require.NotNil(t, res.FireAge)
	assert.Equal(t, 40, *res.FireBaseAge)
	assert.Equal(t, 42, *res.FireAge)
	assert.LessOrEqual(t, *res.FireBaseAge, *res.FireAge)
}

func intPtr(i int) *int { return &i }

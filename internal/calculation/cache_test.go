package calculation

import (
	"sync/atomic"
	"testing"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProjector struct {
	calls atomic.Int32
	next  Projector
}

func (c *countingProjector) Project(in domain.ProjectionInput) (*domain.ProjectionResult, error) {
	c.calls.Add(1)
	return c.next.Project(in)
}

func TestMemoizingProjector_HitsOnEqualInput(t *testing.T) {
	counter := &countingProjector{next: NewProjectionEngine()}
	var hits, misses int
	mp := NewMemoizingProjector(counter, 4)
	mp.OnLookup = func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	}

	first, err := mp.Project(scenarioInput())
	require.NoError(t, err)

	in := scenarioInput()
	in.ReturnRate = decimal.RequireFromString("8.000")
	second, err := mp.Project(in)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), counter.calls.Load())
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestMemoizingProjector_EvictsOldest(t *testing.T) {
	counter := &countingProjector{next: NewProjectionEngine()}
	mp := NewMemoizingProjector(counter, 2)

	inputs := make([]domain.ProjectionInput, 3)
	for i := range inputs {
		inputs[i] = scenarioInput()
		inputs[i].Age = 25 + i
	}

	for _, in := range inputs {
		_, err := mp.Project(in)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, mp.Len())
	assert.Equal(t, int32(3), counter.calls.Load())

	// most recent two are cached
	_, err := mp.Project(inputs[2])
	require.NoError(t, err)
	_, err = mp.Project(inputs[1])
	require.NoError(t, err)
	assert.Equal(t, int32(3), counter.calls.Load())

	// the first was evicted
	_, err = mp.Project(inputs[0])
	require.NoError(t, err)
	assert.Equal(t, int32(4), counter.calls.Load())
}

func TestMemoizingProjector_DoesNotCacheErrors(t *testing.T) {
	counter := &countingProjector{next: NewProjectionEngine()}
	mp := NewMemoizingProjector(counter, 0)

	in := scenarioInput()
	in.RetirementAge = 95
	for i := 0; i < 2; i++ {
		res, err := mp.Project(in)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, int32(2), counter.calls.Load())
	assert.Equal(t, 0, mp.Len())
}

package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSensitivitySteps bounds the size of a single sweep.
const MaxSensitivitySteps = 200

// SweepValues returns the evenly spaced values of a parameter, min and max included.
func SweepValues(param domain.SensitivityParameter) ([]decimal.Decimal, error) {
	if param.Steps < 1 || param.Steps > MaxSensitivitySteps {
		return nil, domain.NewInputError("steps", fmt.Sprintf("must be between 1 and %d", MaxSensitivitySteps))
	}
	if param.MinValue.GreaterThan(param.MaxValue) {
		return nil, domain.NewInputError("min_value", "cannot exceed max_value")
	}
	if param.Steps == 1 {
		return []decimal.Decimal{param.MinValue}, nil
	}

	step := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	values := make([]decimal.Decimal, param.Steps)
	for i := range values {
		values[i] = param.MinValue.Add(step.Mul(decimal.NewFromInt(int64(i))))
	}
	values[len(values)-1] = param.MaxValue
	return values, nil
}

// RunSensitivity forward-simulates the base input once per sweep value of param.
// Points run concurrently; a point whose input is invalid carries the error message
// instead of achievement ages.
func RunSensitivity(ctx context.Context, p Projector, base domain.ProjectionInput, param domain.SensitivityParameter) (*domain.SensitivityAnalysis, error) {
	if _, err := base.WithParameter(param.Name, param.MinValue); err != nil {
		return nil, err
	}
	values, err := SweepValues(param)
	if err != nil {
		return nil, err
	}

	points := make([]domain.SensitivityPoint, len(values))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 8)

	for i, v := range values {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("sensitivity sweep cancelled: %w", err)
		}
		wg.Add(1)
		go func(idx int, value decimal.Decimal) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			points[idx] = runSensitivityPoint(p, base, param.Name, value)
		}(i, v)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sensitivity sweep cancelled: %w", err)
	}

	return &domain.SensitivityAnalysis{Base: base, Parameter: param, Points: points}, nil
}

func runSensitivityPoint(p Projector, base domain.ProjectionInput, name string, value decimal.Decimal) domain.SensitivityPoint {
	point := domain.SensitivityPoint{Value: value}

	in, err := base.WithParameter(name, value)
	if err != nil {
		point.Error = err.Error()
		return point
	}
	res, err := p.Project(in)
	if err != nil {
		point.Error = err.Error()
		return point
	}

	point.FireAge = res.FireAge
	point.SemiFiAge = res.SemiFiAge
	point.CoastFiAge = res.CoastFiAge
	point.FireTarget = res.Targets.FireTarget
	point.RealRate = res.RealRate
	return point
}

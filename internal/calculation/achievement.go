package calculation

import (
	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// FirstCrossing returns the index of the first point whose balance meets threshold,
// or nil if no recorded point does.
func FirstCrossing(points []domain.Point, threshold decimal.Decimal) *int {
	for i, p := range points {
		if meetsTarget(p.Balance, threshold) {
			idx := i
			return &idx
		}
	}
	return nil
}

// AgeAt converts an elapsed-year offset into an absolute age. A nil offset stays nil.
func AgeAt(age int, offset *int) *int {
	if offset == nil {
		return nil
	}
	a := age + *offset
	return &a
}

// assembleResult runs the achievement detector over a simulation and builds the result.
func assembleResult(in domain.ProjectionInput, targets domain.Targets, realRate decimal.Decimal, sim Simulation) *domain.ProjectionResult {
	fire := domain.Trajectory{
		Milestone:      domain.MilestoneFIRE,
		Target:         targets.FireTarget,
		Points:         sim.FIRE,
		AchievedAtYear: FirstCrossing(sim.FIRE, targets.FireTarget),
	}
	semiFi := domain.Trajectory{
		Milestone:      domain.MilestoneSemiFI,
		Target:         targets.SemiFiTarget,
		Points:         sim.SemiFI,
		AchievedAtYear: FirstCrossing(sim.SemiFI, targets.SemiFiTarget),
	}
	coastFi := domain.Trajectory{
		Milestone:      domain.MilestoneCoastFI,
		Target:         targets.CoastTarget,
		Points:         sim.CoastFI,
		AchievedAtYear: FirstCrossing(sim.CoastFI, targets.CoastTarget),
	}

	return &domain.ProjectionResult{
		Input:       in,
		RealRate:    realRate,
		Horizon:     in.Horizon(),
		Targets:     targets,
		FIRE:        fire,
		SemiFI:      semiFi,
		CoastFI:     coastFi,
		FireAge:     AgeAt(in.Age, fire.AchievedAtYear),
		FireBaseAge: AgeAt(in.Age, FirstCrossing(sim.FIRE, targets.FireTargetBase)),
		SemiFiAge:   AgeAt(in.Age, semiFi.AchievedAtYear),
		CoastFiAge:  AgeAt(in.Age, coastFi.AchievedAtYear),
	}
}

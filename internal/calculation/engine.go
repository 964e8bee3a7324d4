package calculation

import (
	"fmt"

	"github.com/fipath/fi-calculator/internal/domain"
)

// Projector is anything that turns an input into a projection result.
type Projector interface {
	Project(in domain.ProjectionInput) (*domain.ProjectionResult, error)
}

// ProjectionEngine orchestrates the target calculator, the trajectory simulator and the
// achievement detector. It keeps no state between calls and is safe for concurrent use.
type ProjectionEngine struct {
	Debug  bool // log targets and achievement offsets
	Logger Logger
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = loggerOrNop(l)
}

// Project validates the input and runs a full projection. Invalid inputs are rejected
// before any simulation work and never produce a partial result.
func (pe *ProjectionEngine) Project(in domain.ProjectionInput) (*domain.ProjectionResult, error) {
	logger := loggerOrNop(pe.Logger)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	targets, realRate, err := CalculateTargets(in)
	if err != nil {
		return nil, fmt.Errorf("calculate targets: %w", err)
	}

	sim := SimulateTrajectories(in, targets, realRate)
	result := assembleResult(in, targets, realRate, sim)

	if pe.Debug {
		logger.Debugf("PROJECTION age=%d retirement_age=%d horizon=%d", in.Age, in.RetirementAge, result.Horizon)
		logger.Debugf("  real rate:          %s", realRate.StringFixed(6))
		logger.Debugf("  FIRE target base:   $%s", targets.FireTargetBase.StringFixed(2))
		logger.Debugf("  Semi-FI target:     $%s", targets.SemiFiTarget.StringFixed(2))
		logger.Debugf("  cash cushion:       $%s", targets.CashCushionTarget.StringFixed(2))
		logger.Debugf("  FIRE target:        $%s", targets.FireTarget.StringFixed(2))
		logger.Debugf("  Coast target:       $%s", targets.CoastTarget.StringFixed(2))
		logger.Debugf("  simulated years:    %d", result.Years())
		for _, tr := range result.Trajectories() {
			if tr.AchievedAtYear != nil {
				logger.Debugf("  %-8s reached after %d years", tr.Milestone.Label(), *tr.AchievedAtYear)
			} else {
				logger.Debugf("  %-8s not reached within %d years", tr.Milestone.Label(), domain.MaxProjectionYears)
			}
		}
	}
	if targets.CashCushionTarget.IsNegative() {
		logger.Warnf("cash cushion is negative (%s): yield shield exceeds expenses", targets.CashCushionTarget.StringFixed(2))
	}

	return result, nil
}

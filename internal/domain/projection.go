package domain

import (
	"github.com/shopspring/decimal"
)

// Milestone identifies one of the simulated wealth trajectories.
type Milestone string

const (
	MilestoneFIRE    Milestone = "fire"
	MilestoneSemiFI  Milestone = "semi_fi"
	MilestoneCoastFI Milestone = "coast_fi"
)

// Label returns the display name of the milestone.
func (m Milestone) Label() string {
	switch m {
	case MilestoneFIRE:
		return "FIRE"
	case MilestoneSemiFI:
		return "Semi-FI"
	case MilestoneCoastFI:
		return "Coast FI"
	}
	return string(m)
}

// Point is a start-of-year balance. Year is the calendar age.
type Point struct {
	Year    int             `json:"year"`
	Balance decimal.Decimal `json:"balance"`
}

// Targets holds the thresholds derived from a projection input.
type Targets struct {
	FireTargetBase    decimal.Decimal `json:"fire_target_base"`
	SemiFiTarget      decimal.Decimal `json:"semi_fi_target"`
	CashCushionTarget decimal.Decimal `json:"cash_cushion_target"` // may be negative
	FireTarget        decimal.Decimal `json:"fire_target"`
	CoastTarget       decimal.Decimal `json:"coast_target"`
}

// Trajectory is one simulated balance sequence and the year its target was first met.
type Trajectory struct {
	Milestone Milestone       `json:"milestone"`
	Target    decimal.Decimal `json:"target"`
	Points    []Point         `json:"points"`

	// AchievedAtYear is the elapsed-year offset of the first point meeting Target,
	// nil when the target was not met within the projection window.
	AchievedAtYear *int `json:"achieved_at_year"`
}

// Achieved reports whether the target was met within the window.
func (t Trajectory) Achieved() bool { return t.AchievedAtYear != nil }

// Final returns the last recorded point.
func (t Trajectory) Final() Point {
	if len(t.Points) == 0 {
		return Point{}
	}
	return t.Points[len(t.Points)-1]
}

// ProjectionResult is the complete output of one engine invocation.
type ProjectionResult struct {
	Input    ProjectionInput `json:"input"`
	RealRate decimal.Decimal `json:"real_rate"`
	Horizon  int             `json:"horizon"`
	Targets  Targets         `json:"targets"`

	FIRE    Trajectory `json:"fire"`
	SemiFI  Trajectory `json:"semi_fi"`
	CoastFI Trajectory `json:"coast_fi"`

	// Absolute ages; nil means not within the projection window.
	FireAge     *int `json:"fire_age"`
	FireBaseAge *int `json:"fire_base_age"` // first age the FIRE balance met the base target alone
	SemiFiAge   *int `json:"semi_fi_age"`
	CoastFiAge  *int `json:"coast_fi_age"`
}

// Trajectories returns the three trajectories in display order.
func (r *ProjectionResult) Trajectories() []Trajectory {
	return []Trajectory{r.FIRE, r.SemiFI, r.CoastFI}
}

// Years returns the number of simulated years shared by all trajectories.
func (r *ProjectionResult) Years() int {
	return len(r.FIRE.Points)
}

// AgeFor returns the achievement age of a milestone.
func (r *ProjectionResult) AgeFor(m Milestone) *int {
	switch m {
	case MilestoneFIRE:
		return r.FireAge
	case MilestoneSemiFI:
		return r.SemiFiAge
	case MilestoneCoastFI:
		return r.CoastFiAge
	}
	return nil
}

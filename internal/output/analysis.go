package output

import (
	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MilestoneSummary is the display row for one trajectory.
type MilestoneSummary struct {
	Milestone    domain.Milestone
	Label        string
	Target       decimal.Decimal
	Age          *int
	YearsFromNow *int
	FinalBalance decimal.Decimal
}

// Reached reports whether the milestone was achieved inside the window.
func (m MilestoneSummary) Reached() bool { return m.Age != nil }

// SummarizeMilestones builds one row per trajectory in FIRE, Semi-FI, Coast FI order.
func SummarizeMilestones(result *domain.ProjectionResult) []MilestoneSummary {
	rows := make([]MilestoneSummary, 0, 3)
	for _, tr := range result.Trajectories() {
		rows = append(rows, MilestoneSummary{
			Milestone:    tr.Milestone,
			Label:        tr.Milestone.Label(),
			Target:       tr.Target,
			Age:          result.AgeFor(tr.Milestone),
			YearsFromNow: tr.AchievedAtYear,
			FinalBalance: tr.Final().Balance,
		})
	}
	return rows
}

// ZeroExpenses reports a projection whose targets are all zero, so every milestone
// is met in the first year regardless of savings.
func ZeroExpenses(result *domain.ProjectionResult) bool {
	return result.Input.Expenses.IsZero()
}

// YearRow is one simulated year across all three trajectories.
type YearRow struct {
	Offset  int
	Age     int
	FIRE    decimal.Decimal
	SemiFI  decimal.Decimal
	CoastFI decimal.Decimal

	// Milestones first reached in this year.
	Reached []domain.Milestone
}

// YearlyRows zips the trajectories into per-year rows.
func YearlyRows(result *domain.ProjectionResult) []YearRow {
	rows := make([]YearRow, 0, result.Years())
	for i, p := range result.FIRE.Points {
		row := YearRow{Offset: i, Age: p.Year, FIRE: p.Balance}
		if i < len(result.SemiFI.Points) {
			row.SemiFI = result.SemiFI.Points[i].Balance
		}
		if i < len(result.CoastFI.Points) {
			row.CoastFI = result.CoastFI.Points[i].Balance
		}
		for _, tr := range result.Trajectories() {
			if tr.AchievedAtYear != nil && *tr.AchievedAtYear == i {
				row.Reached = append(row.Reached, tr.Milestone)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

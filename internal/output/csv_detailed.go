package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fipath/fi-calculator/internal/domain"
)

// CSVDetailedExporter writes one row per simulated year with all three balances.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age", "FIRE", "SemiFI", "CoastFI", "FireReached", "SemiFiReached", "CoastFiReached"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range YearlyRows(result) {
		record := []string{
			intToString(row.Offset),
			intToString(row.Age),
			row.FIRE.StringFixed(2),
			row.SemiFI.StringFixed(2),
			row.CoastFI.StringFixed(2),
			boolToString(reachedBy(result.FIRE, row.Offset)),
			boolToString(reachedBy(result.SemiFI, row.Offset)),
			boolToString(reachedBy(result.CoastFI, row.Offset)),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// reachedBy reports whether the trajectory had met its target at or before offset.
func reachedBy(tr domain.Trajectory, offset int) bool {
	return tr.AchievedAtYear != nil && *tr.AchievedAtYear <= offset
}

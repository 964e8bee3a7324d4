package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fipath/fi-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (targets and milestone ages, one row).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "RetirementAge", "RealRate", "FireTargetBase", "CashCushion", "FireTarget", "SemiFiTarget", "CoastTarget", "FireAge", "FireBaseAge", "SemiFiAge", "CoastFiAge", "Years"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	t := result.Targets
	row := []string{
		intToString(result.Input.Age),
		intToString(result.Input.RetirementAge),
		result.RealRate.StringFixed(6),
		t.FireTargetBase.StringFixed(2),
		t.CashCushionTarget.StringFixed(2),
		t.FireTarget.StringFixed(2),
		t.SemiFiTarget.StringFixed(2),
		t.CoastTarget.StringFixed(2),
		ageCell(result.FireAge),
		ageCell(result.FireBaseAge),
		ageCell(result.SemiFiAge),
		ageCell(result.CoastFiAge),
		intToString(result.Years()),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/fipath/fi-calculator/internal/domain"
)

// FormatSensitivity renders a sweep as "console" (table), "csv" or "json".
func FormatSensitivity(a *domain.SensitivityAnalysis, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "console", "console-lite":
		return sensitivityTable(a), nil
	case "csv", "detailed-csv":
		return sensitivityCSV(a)
	case "json":
		return json.MarshalIndent(RoundedSensitivity(a), "", "  ")
	}
	return nil, fmt.Errorf("%w: %q for sensitivity (use console, csv or json)", ErrUnsupportedFormat, format)
}

func sensitivityTable(a *domain.SensitivityAnalysis) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SENSITIVITY: %s from %s to %s (%d steps)\n", a.Parameter.Name, a.Parameter.MinValue.String(), a.Parameter.MaxValue.String(), a.Parameter.Steps)
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "%-12s %16s %10s %10s %10s\n", "VALUE", "FIRE TARGET", "FIRE", "SEMI-FI", "COAST FI")
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	for _, p := range a.Points {
		if p.Error != "" {
			fmt.Fprintf(&buf, "%-12s invalid: %s\n", p.Value.String(), p.Error)
			continue
		}
		fmt.Fprintf(&buf, "%-12s %16s %10s %10s %10s\n",
			p.Value.String(),
			FormatWholeCurrency(p.FireTarget),
			shortAge(p.FireAge),
			shortAge(p.SemiFiAge),
			shortAge(p.CoastFiAge),
		)
	}
	fmt.Fprintf(&buf, "\n\"-\" = %s\n", NotWithinWindow)
	return buf.Bytes()
}

func sensitivityCSV(a *domain.SensitivityAnalysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Parameter", "Value", "RealRate", "FireTarget", "FireAge", "SemiFiAge", "CoastFiAge", "Error"}); err != nil {
		return nil, err
	}
	for _, p := range a.Points {
		row := []string{
			a.Parameter.Name,
			p.Value.String(),
			p.RealRate.StringFixed(6),
			p.FireTarget.StringFixed(2),
			ageCell(p.FireAge),
			ageCell(p.SemiFiAge),
			ageCell(p.CoastFiAge),
			p.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func shortAge(age *int) string {
	if age == nil {
		return "-"
	}
	return intToString(*age)
}

package output

import (
	"bytes"
	"fmt"

	"github.com/fipath/fi-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FI PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Age %d, retiring at %d, real return %s\n", result.Input.Age, result.Input.RetirementAge, FormatRate(result.RealRate))
	fmt.Fprintln(&buf)
	for _, m := range SummarizeMilestones(result) {
		fmt.Fprintf(&buf, "%s: Target=%s Reached=%s\n", m.Label, FormatCurrency(m.Target), FormatAge(m.Age))
	}
	return buf.Bytes(), nil
}

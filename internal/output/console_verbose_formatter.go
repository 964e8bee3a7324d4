package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fipath/fi-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full console report with the yearly table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	in := result.Input

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "FINANCIAL INDEPENDENCE PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INPUTS:")
	fmt.Fprintf(&buf, "  Annual Income:          %s\n", FormatCurrency(in.Income))
	fmt.Fprintf(&buf, "  Savings Rate:           %s\n", FormatPercentage(in.SavingsRate))
	fmt.Fprintf(&buf, "  Annual Contribution:    %s\n", FormatCurrency(in.AnnualContribution()))
	fmt.Fprintf(&buf, "  Annual Expenses:        %s\n", FormatCurrency(in.Expenses))
	fmt.Fprintf(&buf, "  Current Savings:        %s\n", FormatCurrency(in.CurrentSavings))
	fmt.Fprintf(&buf, "  Current Age:            %d\n", in.Age)
	fmt.Fprintf(&buf, "  Target Retirement Age:  %d\n", in.RetirementAge)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(result) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	t := result.Targets
	fmt.Fprintln(&buf, "TARGETS (today's dollars):")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Base FIRE Target:       %s\n", FormatCurrency(t.FireTargetBase))
	fmt.Fprintf(&buf, "  Cash Cushion:           %s\n", FormatCurrency(t.CashCushionTarget))
	fmt.Fprintf(&buf, "  FIRE Target:            %s\n", FormatCurrency(t.FireTarget))
	fmt.Fprintf(&buf, "  Semi-FI Target:         %s\n", FormatCurrency(t.SemiFiTarget))
	fmt.Fprintf(&buf, "  Coast FI Target:        %s\n", FormatCurrency(t.CoastTarget))
	if t.CashCushionTarget.IsNegative() {
		fmt.Fprintln(&buf, "  Note: portfolio yield exceeds expenses over the cushion period; the")
		fmt.Fprintln(&buf, "        negative cushion lowers the FIRE target below the base target.")
	}
	if ZeroExpenses(result) {
		fmt.Fprintln(&buf, "  Note: annual expenses are zero, so every target is $0.00 and each")
		fmt.Fprintln(&buf, "        milestone is met at the current age.")
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MILESTONES:")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	for _, m := range SummarizeMilestones(result) {
		fmt.Fprintf(&buf, "  %-10s %s\n", m.Label+":", FormatAge(m.Age))
	}
	fmt.Fprintf(&buf, "  %-10s %s\n", "Base only:", FormatAge(result.FireBaseAge))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEARLY PROJECTION:")
	fmt.Fprintf(&buf, "%-5s %16s %16s %16s  %s\n", "AGE", "FIRE", "SEMI-FI", "COAST FI", "REACHED")
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	for _, row := range YearlyRows(result) {
		labels := make([]string, 0, len(row.Reached))
		for _, m := range row.Reached {
			labels = append(labels, m.Label())
		}
		line := fmt.Sprintf("%-5d %16s %16s %16s  %s",
			row.Age,
			FormatWholeCurrency(row.FIRE),
			FormatWholeCurrency(row.SemiFI),
			FormatWholeCurrency(row.CoastFI),
			strings.Join(labels, ", "),
		)
		fmt.Fprintln(&buf, strings.TrimRight(line, " "))
	}

	return buf.Bytes(), nil
}

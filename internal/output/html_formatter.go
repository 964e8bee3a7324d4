package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/fipath/fi-calculator/internal/domain"
)

// HTMLFormatter produces a static HTML report with tables only.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"whole": FormatWholeCurrency,
	"pct":   FormatPercentage,
	"age":   FormatAge,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Result          *domain.ProjectionResult
		Milestones      []MilestoneSummary
		Rows            []YearRow
		Assumptions     []string
		NegativeCushion bool
		ZeroExpenses    bool
	}{
		Result:          result,
		Milestones:      SummarizeMilestones(result),
		Rows:            YearlyRows(result),
		Assumptions:     GenerateAssumptions(result),
		NegativeCushion: result.Targets.CashCushionTarget.IsNegative(),
		ZeroExpenses:    ZeroExpenses(result),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

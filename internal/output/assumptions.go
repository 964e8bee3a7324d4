package output

import (
	"fmt"

	"github.com/fipath/fi-calculator/internal/calculation"
	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateAssumptions lists the modeling assumptions behind a projection.
func GenerateAssumptions(result *domain.ProjectionResult) []string {
	in := result.Input
	return []string{
		fmt.Sprintf("Life expectancy: age %d (%d years of retirement funded)", domain.LifeExpectancyAge, result.Horizon),
		fmt.Sprintf("Real return: %s (%s nominal, %s inflation)", FormatRate(result.RealRate), FormatPercentage(in.ReturnRate), FormatPercentage(in.InflationRate)),
		fmt.Sprintf("Semi-FI covers %s of the base FIRE target", FormatPercentage(calculation.SemiFiFraction.Mul(decimalHundred))),
		fmt.Sprintf("Cash cushion: %s years of expenses net of a %s yield", calculation.CashCushionYears.String(), FormatRate(calculation.YieldShieldRate)),
		"Contributions and expenses are constant in today's dollars",
		"Balances are recorded at the start of each year, before growth",
		fmt.Sprintf("Projection window: at most %d years", domain.MaxProjectionYears),
	}
}

var decimalHundred = decimal.NewFromInt(100)

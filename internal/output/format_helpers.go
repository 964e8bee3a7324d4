package output

import (
	"fmt"
	"strconv"

	pkgdecimal "github.com/fipath/fi-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// NotWithinWindow is rendered for milestones never reached inside the projection.
const NotWithinWindow = "Not within projection window"

// FormatCurrency formats a decimal as grouped USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return pkgdecimal.NewMoney(amount).Format() }

// FormatWholeCurrency formats a decimal as grouped USD currency rounded to dollars.
func FormatWholeCurrency(amount decimal.Decimal) string {
	return pkgdecimal.NewMoney(amount).FormatWhole()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.05) as a percentage ("5.00%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// FormatAge renders an achievement age or the not-reached marker.
func FormatAge(age *int) string {
	if age == nil {
		return NotWithinWindow
	}
	return fmt.Sprintf("age %d", *age)
}

// ageCell is the bare form of FormatAge used in CSV cells.
func ageCell(age *int) string {
	if age == nil {
		return ""
	}
	return intToString(*age)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

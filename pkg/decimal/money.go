package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount for display
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal.Decimal
func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Format renders the amount as "$1,234.57" or "-$1,234.57"
func (m Money) Format() string {
	return format(m.Decimal, 2)
}

// FormatWhole renders the amount rounded to whole dollars, e.g. "$1,235"
func (m Money) FormatWhole() string {
	return format(m.Decimal, 0)
}

func format(d decimal.Decimal, places int32) string {
	s := d.Abs().StringFixed(places)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if d.Round(places).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// Package money holds the fixed-point helpers shared by payroll amounts.
package money

import "github.com/shopspring/decimal"

const Places = 2

var Hundred = decimal.NewFromInt(100)

// HasValidScale reports whether d carries at most two decimal places.
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(Places))
}

// Column precisions of the payroll tables, all with two decimal places.
const (
	PrecisionAmount   = 12
	PrecisionQuantity = 7
	PrecisionTotal    = 14
)

// Fits reports whether d can be stored in a NUMERIC(precision, 2) column.
func Fits(d decimal.Decimal, precision int32) bool {
	return d.Abs().LessThan(decimal.New(1, precision-Places))
}

// Line returns amount × quantity rounded half away from zero to cents.
func Line(amount, quantity decimal.Decimal) decimal.Decimal {
	return amount.Mul(quantity).Round(Places)
}

// Format renders d with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// FormatThousands renders d as 1,952,937.00 for documents.
func FormatThousands(d decimal.Decimal) string {
	s := d.Abs().StringFixed(Places)
	intPart, frac := s[:len(s)-Places-1], s[len(s)-Places:]

	out := make([]byte, 0, len(s)+len(intPart)/3+1)
	if d.IsNegative() {
		out = append(out, '-')
	}
	for i := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	out = append(out, '.')
	return string(append(out, frac...))
}

// Parse reads a decimal string such as "1896702.04".
func Parse(v string) (decimal.Decimal, error) {
	return decimal.NewFromString(v)
}

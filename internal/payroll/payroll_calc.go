package payroll

import (
	"rhplus/internal/shared/money"

	"github.com/shopspring/decimal"
)

const (
	KindEarning   = "EARNING"
	KindDeduction = "DEDUCTION"
)

// Line is one detail as seen by the aggregator.
type Line struct {
	Kind     string
	Amount   decimal.Decimal
	Quantity decimal.Decimal
}

type Totals struct {
	Earnings   decimal.Decimal
	Deductions decimal.Decimal
	NetPay     decimal.Decimal
}

// ComputeTotals derives entry totals from its full detail set. Each line
// contributes amount × quantity rounded to cents; lines of any other kind
// are ignored.
func ComputeTotals(lines []Line) Totals {
	earnings := decimal.Zero
	deductions := decimal.Zero

	for _, l := range lines {
		switch l.Kind {
		case KindEarning:
			earnings = earnings.Add(money.Line(l.Amount, l.Quantity))
		case KindDeduction:
			deductions = deductions.Add(money.Line(l.Amount, l.Quantity))
		}
	}

	return Totals{
		Earnings:   earnings,
		Deductions: deductions,
		NetPay:     earnings.Sub(deductions),
	}
}

// fit reports whether every total can be stored in the entry columns.
func (t Totals) fit() bool {
	return money.Fits(t.Earnings, money.PrecisionTotal) &&
		money.Fits(t.Deductions, money.PrecisionTotal) &&
		money.Fits(t.NetPay, money.PrecisionTotal)
}

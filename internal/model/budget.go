package model

import "github.com/shopspring/decimal"

// Summary compares a month's spending against its budget. A negative
// Remaining means the month is over budget.
type Summary struct {
	Month     string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// OverBudget reports whether spending exceeded the budget.
func (s Summary) OverBudget() bool {
	return s.Remaining.IsNegative()
}

// UsedFraction returns spent/budget, or 0 when no budget is set.
func (s Summary) UsedFraction() float64 {
	if !s.Budget.IsPositive() {
		return 0
	}
	return s.Spent.Div(s.Budget).InexactFloat64()
}

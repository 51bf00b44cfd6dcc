// Package budget tracks one budget figure per calendar month and compares
// it against ledger spending.
package budget

import (
	"sort"

	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
)

// MonthTotaler sums spending for a month key. *ledger.Ledger satisfies it.
type MonthTotaler interface {
	TotalForMonth(month string) decimal.Decimal
}

// Tracker maps YYYY-MM month keys to budget amounts, backed by one text
// file. It is not safe for concurrent use.
type Tracker struct {
	path    string
	budgets map[string]decimal.Decimal
}

// New returns an empty tracker that loads from and saves to path.
func New(path string) *Tracker {
	return &Tracker{path: path, budgets: make(map[string]decimal.Decimal)}
}

// Path returns the budget store location.
func (t *Tracker) Path() string {
	return t.path
}

// Get returns the budget for month, or zero if none is set. Zero is also a
// valid explicit budget; the two cases are not distinguished.
func (t *Tracker) Get(month string) decimal.Decimal {
	return t.budgets[month]
}

// Set creates or overwrites the budget for month. Nothing is persisted
// until Save.
func (t *Tracker) Set(month string, amount decimal.Decimal) {
	t.budgets[month] = amount
}

// Len returns the number of months with a budget.
func (t *Tracker) Len() int {
	return len(t.budgets)
}

// Months returns every month with a budget, ascending.
func (t *Tracker) Months() []string {
	months := make([]string, 0, len(t.budgets))
	for m := range t.budgets {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// All returns a copy of the month -> budget mapping.
func (t *Tracker) All() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t.budgets))
	for m, b := range t.budgets {
		out[m] = b
	}
	return out
}

// Summarize compares month's budget with the spending reported by l.
func (t *Tracker) Summarize(month string, l MonthTotaler) model.Summary {
	b := t.Get(month)
	spent := l.TotalForMonth(month)
	return model.Summary{
		Month:     month,
		Budget:    b,
		Spent:     spent,
		Remaining: b.Sub(spent),
	}
}

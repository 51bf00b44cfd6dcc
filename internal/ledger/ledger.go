// Package ledger holds the user's expense records and persists them to a
// CSV record store.
package ledger

import (
	"sort"

	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
)

// Ledger is the in-memory set of expense records backed by one CSV file.
// It is not safe for concurrent use.
type Ledger struct {
	path     string
	expenses []model.Expense
}

// New returns an empty ledger that loads from and saves to path.
func New(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the record store location.
func (l *Ledger) Path() string {
	return l.path
}

// Len returns the number of records held in memory.
func (l *Ledger) Len() int {
	return len(l.expenses)
}

// Add appends e after checking its date. Nothing is persisted until Save.
func (l *Ledger) Add(e model.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	l.expenses = append(l.expenses, e)
	return nil
}

// ListSorted returns a copy of all records ordered by date. Records sharing a
// date keep their insertion order when ascending; descending is the exact
// reverse of the ascending sequence.
func (l *Ledger) ListSorted(descending bool) []model.Expense {
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)

	// Dates are validated YYYY-MM-DD, so string order is chronological.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	if descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// TotalForMonth sums the amounts of records whose date starts with month.
func (l *Ledger) TotalForMonth(month string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		if e.InMonth(month) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

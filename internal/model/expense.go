// Package model defines the expense record, category and summary types.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one logged transaction. Records carry no identifier; they are
// addressed only by position in the ledger.
type Expense struct {
	Date        string // YYYY-MM-DD
	Category    Category
	Amount      decimal.Decimal
	Description string
}

// Validate checks the date. Amount and category are not range-checked.
func (e Expense) Validate() error {
	return ValidateDate(e.Date)
}

// Time returns the parsed date, or the zero time if the date is invalid.
func (e Expense) Time() time.Time {
	t, _ := time.Parse(DateLayout, e.Date)
	return t
}

// InMonth reports whether the record's date starts with month. This is a
// lexical prefix match, so "2025" matches the whole year.
func (e Expense) InMonth(month string) bool {
	return len(e.Date) >= len(month) && e.Date[:len(month)] == month
}

package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts used for records and month keys.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidAmount = errors.New("invalid amount")
)

// ValidationError rejects a single input value. The wrapped error is one of
// the Err* sentinels above.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateDate checks that s is a calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return &ValidationError{Field: "date", Value: s, Err: ErrInvalidDate}
	}
	return nil
}

// ParseMonth trims s and checks it is a YYYY-MM month key.
func ParseMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(MonthLayout, s); err != nil {
		return "", &ValidationError{Field: "month", Value: s, Err: ErrInvalidMonth}
	}
	return s, nil
}

// ParseAmount parses a decimal amount. Sign is not checked: negative and
// zero amounts are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Err: ErrInvalidAmount}
	}
	return d, nil
}

// MonthOf returns the month key for t.
func MonthOf(t time.Time) string {
	return t.Format(MonthLayout)
}

package model

import "github.com/shopspring/decimal"

// MonthStats holds spending and budget for one calendar month.
type MonthStats struct {
	Month     string
	Count     int
	Spent     decimal.Decimal
	Budget    decimal.Decimal
	Remaining decimal.Decimal
}

// CategoryStats holds spending for one category within a period.
type CategoryStats struct {
	Category     Category
	Count        int
	Spent        decimal.Decimal
	SharePercent float64
}

// DayStats holds spending for one calendar day.
type DayStats struct {
	Date  string
	Count int
	Spent decimal.Decimal
}

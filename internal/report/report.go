// Package report aggregates expense records into per-month, per-category
// and per-day statistics.
package report

import (
	"sort"
	"time"

	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
)

// Months returns one entry per month that has expenses or a budget, newest
// first.
func Months(expenses []model.Expense, budgets map[string]decimal.Decimal) []model.MonthStats {
	monthMap := make(map[string]*model.MonthStats)
	get := func(m string) *model.MonthStats {
		ms, ok := monthMap[m]
		if !ok {
			ms = &model.MonthStats{Month: m}
			monthMap[m] = ms
		}
		return ms
	}

	for _, e := range expenses {
		if len(e.Date) < len(model.MonthLayout) {
			continue
		}
		ms := get(e.Date[:len(model.MonthLayout)])
		ms.Count++
		ms.Spent = ms.Spent.Add(e.Amount)
	}
	for m, b := range budgets {
		get(m).Budget = b
	}

	months := make([]model.MonthStats, 0, len(monthMap))
	for _, ms := range monthMap {
		ms.Remaining = ms.Budget.Sub(ms.Spent)
		months = append(months, *ms)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month > months[j].Month
	})
	return months
}

// Categories computes per-category spending for month. An empty month covers
// all records. Results are sorted by spending descending, ties by code.
func Categories(expenses []model.Expense, month string) []model.CategoryStats {
	filtered := FilterMonth(expenses, month)

	catMap := make(map[model.Category]*model.CategoryStats)
	total := decimal.Zero
	for _, e := range filtered {
		cs, ok := catMap[e.Category]
		if !ok {
			cs = &model.CategoryStats{Category: e.Category}
			catMap[e.Category] = cs
		}
		cs.Count++
		cs.Spent = cs.Spent.Add(e.Amount)
		total = total.Add(e.Amount)
	}

	cats := make([]model.CategoryStats, 0, len(catMap))
	for _, cs := range catMap {
		if total.IsPositive() {
			cs.SharePercent = cs.Spent.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		cats = append(cats, *cs)
	}
	sort.Slice(cats, func(i, j int) bool {
		if c := cats[i].Spent.Cmp(cats[j].Spent); c != 0 {
			return c > 0
		}
		return cats[i].Category.Code() < cats[j].Category.Code()
	})
	return cats
}

// Days returns spending for every day of month, oldest first, with zero
// entries for days without records. month must be a valid YYYY-MM key.
func Days(expenses []model.Expense, month string) ([]model.DayStats, error) {
	start, err := time.Parse(model.MonthLayout, month)
	if err != nil {
		return nil, &model.ValidationError{Field: "month", Value: month, Err: model.ErrInvalidMonth}
	}

	dayMap := make(map[string]*model.DayStats)
	for _, e := range FilterMonth(expenses, month) {
		ds, ok := dayMap[e.Date]
		if !ok {
			ds = &model.DayStats{Date: e.Date}
			dayMap[e.Date] = ds
		}
		ds.Count++
		ds.Spent = ds.Spent.Add(e.Amount)
	}

	// Fill in every day so charts show gaps as zeros
	var days []model.DayStats
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		key := d.Format(model.DateLayout)
		if ds, ok := dayMap[key]; ok {
			days = append(days, *ds)
			continue
		}
		days = append(days, model.DayStats{Date: key})
	}
	return days, nil
}

// FilterMonth returns records whose date starts with month. An empty month
// returns expenses unchanged.
func FilterMonth(expenses []model.Expense, month string) []model.Expense {
	if month == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if e.InMonth(month) {
			result = append(result, e)
		}
	}
	return result
}

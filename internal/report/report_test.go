package report

import (
	"testing"

	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sample() []model.Expense {
	return []model.Expense{
		{Date: "2025-07-01", Category: model.HousingUtilities, Amount: dec("1200.00"), Description: "rent"},
		{Date: "2025-07-02", Category: model.FoodGroceries, Amount: dec("300.50"), Description: "market"},
		{Date: "2025-07-09", Category: model.FoodGroceries, Amount: dec("200"), Description: "market"},
		{Date: "2025-08-03", Category: model.EntertainmentDining, Amount: dec("299.50"), Description: "dinner"},
	}
}

func TestMonths(t *testing.T) {
	budgets := map[string]decimal.Decimal{
		"2025-07": dec("1000"),
		"2025-09": dec("500"),
	}
	months := Months(sample(), budgets)

	if len(months) != 3 {
		t.Fatalf("len(months) = %d, want 3", len(months))
	}
	order := []string{"2025-09", "2025-08", "2025-07"}
	for i, m := range order {
		if months[i].Month != m {
			t.Fatalf("months[%d] = %s, want %s", i, months[i].Month, m)
		}
	}

	july := months[2]
	if july.Count != 3 || !july.Spent.Equal(dec("1700.50")) || !july.Remaining.Equal(dec("-700.50")) {
		t.Errorf("july = %+v", july)
	}
	aug := months[1]
	if !aug.Budget.IsZero() || !aug.Remaining.Equal(dec("-299.50")) {
		t.Errorf("august = %+v", aug)
	}
	sep := months[0]
	if sep.Count != 0 || !sep.Remaining.Equal(dec("500")) {
		t.Errorf("september = %+v", sep)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories(sample(), "2025-07")
	if len(cats) != 2 {
		t.Fatalf("len(cats) = %d, want 2", len(cats))
	}
	if cats[0].Category != model.HousingUtilities {
		t.Errorf("top category = %v, want Housing & Utilities", cats[0].Category)
	}
	food := cats[1]
	if food.Count != 2 || !food.Spent.Equal(dec("500.50")) {
		t.Errorf("food = %+v", food)
	}
	var share float64
	for _, c := range cats {
		share += c.SharePercent
	}
	if share < 99.99 || share > 100.01 {
		t.Errorf("shares sum to %f, want 100", share)
	}
}

func TestCategoriesTieBreaksByCode(t *testing.T) {
	expenses := []model.Expense{
		{Date: "2025-07-01", Category: model.Miscellaneous, Amount: dec("10")},
		{Date: "2025-07-01", Category: model.Transport, Amount: dec("10")},
	}
	cats := Categories(expenses, "")
	if cats[0].Category != model.Transport {
		t.Fatalf("first = %v, want Transport", cats[0].Category)
	}
}

func TestDays(t *testing.T) {
	days, err := Days(sample(), "2025-07")
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	if len(days) != 31 {
		t.Fatalf("len(days) = %d, want 31", len(days))
	}
	if days[0].Date != "2025-07-01" || !days[0].Spent.Equal(dec("1200")) {
		t.Errorf("days[0] = %+v", days[0])
	}
	if !days[2].Spent.IsZero() {
		t.Errorf("days[2] = %+v, want zero", days[2])
	}

	if _, err := Days(nil, "2025-7"); err == nil {
		t.Fatal("Days accepted a malformed month")
	}
}

func TestFilterMonth(t *testing.T) {
	if got := FilterMonth(sample(), "2025-08"); len(got) != 1 {
		t.Fatalf("FilterMonth(2025-08) = %d records, want 1", len(got))
	}
	if got := FilterMonth(sample(), ""); len(got) != 4 {
		t.Fatalf("FilterMonth(\"\") = %d records, want 4", len(got))
	}
}

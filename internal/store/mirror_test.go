package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openTemp(t *testing.T) (*Mirror, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export", "spendlog.db")
	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return m, path
}

func TestExportAndReadBack(t *testing.T) {
	ctx := context.Background()
	m, _ := openTemp(t)
	defer func() { _ = m.Close() }()

	expenses := []model.Expense{
		{Date: "2025-07-01", Category: model.HousingUtilities, Amount: dec("1200.00"), Description: "rent"},
		{Date: "2025-07-02", Category: model.FoodGroceries, Amount: dec("500.50"), Description: "market, weekly"},
		{Date: "2025-08-03", Category: model.EntertainmentDining, Amount: dec("299.50")},
	}
	budgets := map[string]decimal.Decimal{"2025-07": dec("1000")}

	if err := m.Export(ctx, expenses, budgets); err != nil {
		t.Fatalf("Export: %v", err)
	}

	n, err := m.ExpenseCount(ctx)
	if err != nil || n != 3 {
		t.Fatalf("ExpenseCount = %d, %v; want 3", n, err)
	}
	nb, err := m.BudgetCount(ctx)
	if err != nil || nb != 1 {
		t.Fatalf("BudgetCount = %d, %v; want 1", nb, err)
	}

	totals, err := m.MonthTotals(ctx)
	if err != nil {
		t.Fatalf("MonthTotals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("MonthTotals = %v, want 2 months", totals)
	}
	if totals[0].Month != "2025-07" || !totals[0].Spent.Equal(dec("1700.50")) {
		t.Errorf("totals[0] = %+v", totals[0])
	}
	if totals[1].Month != "2025-08" || !totals[1].Spent.Equal(dec("299.50")) {
		t.Errorf("totals[1] = %+v", totals[1])
	}
}

func TestExportReplacesPreviousContents(t *testing.T) {
	ctx := context.Background()
	m, path := openTemp(t)

	first := []model.Expense{
		{Date: "2025-07-01", Category: model.Transport, Amount: dec("1")},
		{Date: "2025-07-02", Category: model.Transport, Amount: dec("2")},
	}
	if err := m.Export(ctx, first, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	_ = m.Close()

	// Reopening must not re-run the initial migration.
	m, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = m.Close() }()

	second := []model.Expense{{Date: "2025-09-01", Category: model.Education, Amount: dec("40")}}
	if err := m.Export(ctx, second, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	n, err := m.ExpenseCount(ctx)
	if err != nil || n != 1 {
		t.Fatalf("ExpenseCount = %d, %v; want 1", n, err)
	}
}

package budget

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

type fixedTotals map[string]decimal.Decimal

func (f fixedTotals) TotalForMonth(month string) decimal.Decimal {
	return f[month]
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGetUnsetIsZero(t *testing.T) {
	tr := New("")
	if got := tr.Get("2025-07"); !got.IsZero() {
		t.Fatalf("Get(unset) = %s, want 0", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	tr := New("")
	tr.Set("2025-07", dec("1000"))
	tr.Set("2025-07", dec("1500"))
	if got := tr.Get("2025-07"); !got.Equal(dec("1500")) {
		t.Fatalf("Get = %s, want 1500", got)
	}
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
}

func TestSummarize(t *testing.T) {
	tr := New("")
	tr.Set("2025-07", dec("1000"))
	totals := fixedTotals{"2025-07": dec("1700.50"), "2025-08": dec("299.50")}

	s := tr.Summarize("2025-07", totals)
	if !s.Remaining.Equal(dec("-700.50")) || !s.OverBudget() {
		t.Fatalf("July summary = %+v, want remaining -700.50", s)
	}

	s = tr.Summarize("2025-08", totals)
	if !s.Budget.IsZero() || !s.Remaining.Equal(dec("-299.50")) {
		t.Fatalf("August summary = %+v, want budget 0 remaining -299.50", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.txt")
	tr := New(path)
	tr.Set("2025-08", dec("2000"))
	tr.Set("2025-07", dec("1000.50"))
	if err := tr.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "2025-07,1000.5\n2025-08,2000\n" {
		t.Fatalf("budget file = %q", raw)
	}

	back := New(path)
	report, err := back.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if report.Loaded != 2 || !back.Get("2025-07").Equal(dec("1000.5")) {
		t.Fatalf("loaded %v, report %+v", back.All(), report)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.txt")
	content := "2025-07,1000\n\n2025-08\n,50\n2025-09,lots\n2025-10,1,2\n2025-07,1200\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tr := New(path)
	report, err := tr.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tr.Len() != 1 || !tr.Get("2025-07").Equal(dec("1200")) {
		t.Fatalf("budgets = %v, want only 2025-07=1200", tr.All())
	}
	if len(report.Skipped) != 4 {
		t.Fatalf("Skipped = %v, want 4", report.Skipped)
	}
	if report.Skipped[0].Line != 3 {
		t.Errorf("first skipped line = %d, want 3", report.Skipped[0].Line)
	}
}

func TestLoadSkipsOversizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.txt")
	content := "2025-07,1000\n" + "junk," + strings.Repeat("x", 70*1024) + "\n2025-08,500\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tr := New(path)
	report, err := tr.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !tr.Get("2025-07").Equal(dec("1000")) || !tr.Get("2025-08").Equal(dec("500")) {
		t.Fatalf("budgets = %v, want 2025-07=1000 and 2025-08=500", tr.All())
	}
	if len(report.Skipped) != 1 || report.Skipped[0].Line != 2 {
		t.Fatalf("Skipped = %d entries, want line 2 only", len(report.Skipped))
	}
}

func TestLoadHandlesCRLFAndMissingFinalNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.txt")
	if err := os.WriteFile(path, []byte("2025-07,1000\r\n2025-08,250.75"), 0o600); err != nil {
		t.Fatal(err)
	}

	tr := New(path)
	report, err := tr.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if report.Loaded != 2 || len(report.Skipped) != 0 {
		t.Fatalf("report = %+v, want 2 loaded and none skipped", report)
	}
	if !tr.Get("2025-08").Equal(dec("250.75")) {
		t.Fatalf("2025-08 = %s, want 250.75", tr.Get("2025-08"))
	}
}

func TestLoadMissingFile(t *testing.T) {
	tr := New(filepath.Join(t.TempDir(), "missing.txt"))
	tr.Set("2025-07", dec("1"))
	if _, err := tr.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tr.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tr.Len())
	}
}

func TestMonthsSorted(t *testing.T) {
	tr := New("")
	for _, m := range []string{"2025-09", "2024-12", "2025-01"} {
		tr.Set(m, dec("1"))
	}
	got := tr.Months()
	want := []string{"2024-12", "2025-01", "2025-09"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Months() = %v, want %v", got, want)
		}
	}
}

package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"1700.5", "₹1,700.50"},
		{"299.50", "₹299.50"},
		{"-700.50", "-₹700.50"},
		{"1234567.891", "₹1,234,567.89"},
		{"-0.004", "₹0.00"},
		{"-0.005", "-₹0.01"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in), "₹")
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Fatalf("FormatNumber = %q", got)
	}
	if got := FormatNumber(-1200); got != "-1,200" {
		t.Fatalf("FormatNumber(-1200) = %q", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth("2025-07"); got != "Jul 2025" {
		t.Fatalf("FormatMonth = %q", got)
	}
	if got := FormatMonth("2025"); got != "2025" {
		t.Fatalf("FormatMonth(2025) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("groceries for the week", 10); got != "groceries…" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("tea", 10); got != "tea" {
		t.Fatalf("Truncate(short) = %q", got)
	}
}

func TestRenderTableAlignsMultibyteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Month", "Spent"},
		Rows: [][]string{
			{"2025-07", "₹1,700.50"},
			{"---"},
			{"Total", "₹1.00"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "₹1,700.50") || !strings.Contains(out, "Total") {
		t.Fatalf("missing cells:\n%s", out)
	}
}

func TestRenderSparklineFlatSeries(t *testing.T) {
	if RenderSparkline(nil) != "" {
		t.Fatal("empty series should render nothing")
	}
	if out := RenderSparkline([]float64{0, 0, 0}); !strings.Contains(out, "▁▁▁") {
		t.Fatalf("flat series = %q", out)
	}
}

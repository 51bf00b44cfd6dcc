package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFromCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{1, "Food & Groceries"},
		{3, "Transport"},
		{8, "Entertainment & Dining"},
		{10, "Miscellaneous"},
		{0, "Miscellaneous"},
		{11, "Miscellaneous"},
		{-4, "Miscellaneous"},
	}
	for _, tt := range tests {
		if got := FromCode(tt.code).Label(); got != tt.want {
			t.Errorf("FromCode(%d).Label() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFromLabel(t *testing.T) {
	c, ok := FromLabel("  health & medical ")
	if !ok || c != HealthMedical {
		t.Fatalf("FromLabel(health & medical) = %v, %v; want %v, true", c, ok, HealthMedical)
	}

	c, ok = FromLabel("Groceries")
	if ok {
		t.Fatal("FromLabel(Groceries) reported a known label")
	}
	if c != Miscellaneous {
		t.Fatalf("unknown label resolved to %v, want Miscellaneous", c)
	}
}

func TestAllCategoriesRoundTrip(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("len(All()) = %d, want 10", len(all))
	}
	for i, c := range all {
		if c.Code() != i+1 {
			t.Errorf("category %d has code %d", i+1, c.Code())
		}
		back, ok := FromLabel(c.Label())
		if !ok || back != c {
			t.Errorf("FromLabel(%q) = %v, %v", c.Label(), back, ok)
		}
	}
}

func TestValidateDate(t *testing.T) {
	for _, ok := range []string{"2025-07-01", "2024-02-29"} {
		if err := ValidateDate(ok); err != nil {
			t.Errorf("ValidateDate(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "2025-13-01", "2025-02-30", "2025/07/01", "2025-7-1", "2023-02-29"} {
		err := ValidateDate(bad)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ValidateDate(%q) = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth(" 2025-07 ")
	if err != nil || got != "2025-07" {
		t.Fatalf("ParseMonth = %q, %v", got, err)
	}
	for _, bad := range []string{"2025-7", "2025-13", "July", "2025-07-01"} {
		if _, err := ParseMonth(bad); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("ParseMonth(%q) = %v, want ErrInvalidMonth", bad, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	for in, want := range map[string]string{
		"1200.00": "1200",
		" 299.5 ": "299.5",
		"-50":     "-50",
		"0":       "0",
	} {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", in, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}

	_, err := ParseAmount("12,50")
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "amount" {
		t.Fatalf("ParseAmount(12,50) error = %v, want amount ValidationError", err)
	}
}

func TestInMonth(t *testing.T) {
	e := Expense{Date: "2025-07-15"}
	if !e.InMonth("2025-07") {
		t.Error("expected 2025-07 match")
	}
	if e.InMonth("2025-08") {
		t.Error("unexpected 2025-08 match")
	}
	if !e.InMonth("2025") {
		t.Error("prefix match on year should hold")
	}
}

func TestSummary(t *testing.T) {
	s := Summary{
		Budget:    decimal.RequireFromString("1000"),
		Spent:     decimal.RequireFromString("1700.50"),
		Remaining: decimal.RequireFromString("-700.50"),
	}
	if !s.OverBudget() {
		t.Fatal("OverBudget() = false, want true")
	}
	if f := s.UsedFraction(); f < 1.70 || f > 1.71 {
		t.Fatalf("UsedFraction() = %f, want ~1.7005", f)
	}

	if f := (Summary{Spent: decimal.NewFromInt(5)}).UsedFraction(); f != 0 {
		t.Fatalf("UsedFraction without budget = %f, want 0", f)
	}
}

package reports

import (
	"testing"

	"budgetbook/internal/core"
)

func TestNormalizeWindow(t *testing.T) {
	cases := []struct{ in, want int }{
		{3, 3}, {6, 6}, {12, 12},
		{0, 6}, {1, 6}, {24, 6}, {-3, 6},
	}
	for _, tc := range cases {
		if got := NormalizeWindow(tc.in); got != tc.want {
			t.Fatalf("NormalizeWindow(%d): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMonthlySeriesOrderAndLabels(t *testing.T) {
	txs := []core.Transaction{
		{ID: "a", Amount: core.Money{Cents: 350000}, Type: core.Income, CategoryID: "cat-1", Date: core.NewDate(2025, 5, 1)},
		{ID: "b", Amount: core.Money{Cents: 120000}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 5)},
		{ID: "c", Amount: core.Money{Cents: 50000}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 3, 10)},
	}

	series := MonthlySeries(txs, 2025, 5, 3)
	if len(series) != 3 {
		t.Fatalf("points: got %d, want 3", len(series))
	}
	wantLabels := []string{"Mar 2025", "Apr 2025", "May 2025"}
	for i, want := range wantLabels {
		if series[i].Label != want {
			t.Fatalf("label %d: got %q, want %q", i, series[i].Label, want)
		}
	}
	if series[0].Expenses.Cents != 50000 || series[0].Savings.Cents != -50000 {
		t.Fatalf("march point wrong: %+v", series[0])
	}
	if series[1].Income.Cents != 0 || series[1].Expenses.Cents != 0 {
		t.Fatalf("empty month must still appear: %+v", series[1])
	}
	if series[2].Income.Cents != 350000 || series[2].Expenses.Cents != 120000 || series[2].Savings.Cents != 230000 {
		t.Fatalf("may point wrong: %+v", series[2])
	}
}

func TestMonthlySeriesCrossesYearBoundary(t *testing.T) {
	series := MonthlySeries(nil, 2025, 2, 6)
	if series[0].Year != 2024 || series[0].Month != 9 {
		t.Fatalf("window start: got %d-%d, want 2024-9", series[0].Year, series[0].Month)
	}
	if series[5].Year != 2025 || series[5].Month != 2 {
		t.Fatalf("window end: got %d-%d, want 2025-2", series[5].Year, series[5].Month)
	}
}

func TestWindowRange(t *testing.T) {
	start, end := WindowRange(2025, 5, 3)
	if start.String() != "2025-03-01" {
		t.Fatalf("start: got %s", start)
	}
	if end.String() != "2025-05-31" {
		t.Fatalf("end: got %s", end)
	}
}

package reports

import (
	"testing"

	"budgetbook/internal/core"
)

func TestCategoryTotalsRanking(t *testing.T) {
	cats := []core.Category{
		{ID: "cat-5", Name: "Rent", Type: core.Expense, Color: "#F97316"},
		{ID: "cat-6", Name: "Utilities", Type: core.Expense, Color: "#F59E0B"},
	}
	txs := []core.Transaction{
		{ID: "a", Amount: core.Money{Cents: 20000}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 2)},
		{ID: "b", Amount: core.Money{Cents: 30000}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 9)},
		{ID: "c", Amount: core.Money{Cents: 5000}, Type: core.Expense, CategoryID: "cat-6", Date: core.NewDate(2025, 5, 15)},
	}

	out := CategoryTotals(txs, cats, core.NewDate(2025, 5, 1), core.NewDate(2025, 5, 31))
	if len(out) != 2 {
		t.Fatalf("entries: got %d, want 2", len(out))
	}
	if out[0].Name != "Rent" || out[0].Amount.Cents != 50000 {
		t.Fatalf("first entry: %+v", out[0])
	}
	if out[1].Name != "Utilities" || out[1].Amount.Cents != 5000 {
		t.Fatalf("second entry: %+v", out[1])
	}
}

func TestCategoryTotalsFilters(t *testing.T) {
	cats := []core.Category{
		{ID: "cat-5", Name: "Rent", Type: core.Expense},
	}
	txs := []core.Transaction{
		// Income: excluded from the expense aggregate.
		{ID: "a", Amount: core.Money{Cents: 1000}, Type: core.Income, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 2)},
		// Out of range.
		{ID: "b", Amount: core.Money{Cents: 2000}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 6, 1)},
		// Unknown category id: silently dropped.
		{ID: "c", Amount: core.Money{Cents: 4000}, Type: core.Expense, CategoryID: "cat-ghost", Date: core.NewDate(2025, 5, 2)},
		// Range boundaries are inclusive.
		{ID: "d", Amount: core.Money{Cents: 800}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 1)},
		{ID: "e", Amount: core.Money{Cents: 1600}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 31)},
	}

	out := CategoryTotals(txs, cats, core.NewDate(2025, 5, 1), core.NewDate(2025, 5, 31))
	if len(out) != 1 {
		t.Fatalf("entries: got %d, want 1: %+v", len(out), out)
	}
	if out[0].Amount.Cents != 2400 {
		t.Fatalf("sum: got %d, want 2400", out[0].Amount.Cents)
	}
}

package reports

import (
	"testing"

	"budgetbook/internal/core"
)

func TestBudgetProgress(t *testing.T) {
	cases := []struct {
		spent, budget int64
		want          float64
	}{
		{15000, 20000, 75},  // within budget
		{30000, 20000, 100}, // clamped
		{0, 20000, 0},
		{20000, 20000, 100},
		{100, 0, 0}, // no budget set
	}
	for _, tc := range cases {
		got := BudgetProgress(core.Money{Cents: tc.spent}, core.Money{Cents: tc.budget})
		if got != tc.want {
			t.Fatalf("progress(%d/%d): got %v, want %v", tc.spent, tc.budget, got, tc.want)
		}
	}
}

func TestTopBudgetCategories(t *testing.T) {
	cats := []core.Category{
		{ID: "cat-1", Name: "Salary", Type: core.Income, Budget: core.Money{Cents: 100}}, // income: excluded
		{ID: "cat-5", Name: "Rent", Type: core.Expense, Budget: core.Money{Cents: 120000}},
		{ID: "cat-6", Name: "Utilities", Type: core.Expense, Budget: core.Money{Cents: 20000}},
		{ID: "cat-7", Name: "Food", Type: core.Expense}, // no budget: excluded
	}
	txs := []core.Transaction{
		{ID: "a", Amount: core.Money{Cents: 15000}, Type: core.Expense, CategoryID: "cat-6", Date: core.NewDate(2025, 5, 6)},
		// Older than any month window; spend is all-time here.
		{ID: "b", Amount: core.Money{Cents: 120000}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2024, 1, 5)},
		{ID: "c", Amount: core.Money{Cents: 9000}, Type: core.Income, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 7)},
	}

	out := TopBudgetCategories(txs, cats, 4)
	if len(out) != 2 {
		t.Fatalf("entries: got %d, want 2", len(out))
	}
	if out[0].CategoryID != "cat-5" || out[1].CategoryID != "cat-6" {
		t.Fatalf("not ranked by spend: %+v", out)
	}
	if out[0].Spent.Cents != 120000 || out[0].Progress != 100 {
		t.Fatalf("rent status wrong: %+v", out[0])
	}
	if out[1].Spent.Cents != 15000 || out[1].Progress != 75 {
		t.Fatalf("utilities status wrong: %+v", out[1])
	}
}

func TestTopBudgetCategoriesLimit(t *testing.T) {
	cats := []core.Category{
		{ID: "a", Name: "A", Type: core.Expense, Budget: core.Money{Cents: 100}},
		{ID: "b", Name: "B", Type: core.Expense, Budget: core.Money{Cents: 100}},
		{ID: "c", Name: "C", Type: core.Expense, Budget: core.Money{Cents: 100}},
	}
	if got := len(TopBudgetCategories(nil, cats, 2)); got != 2 {
		t.Fatalf("limit not applied: %d", got)
	}
	if got := len(TopBudgetCategories(nil, cats, 0)); got != 3 {
		t.Fatalf("limit 0 must mean unlimited: %d", got)
	}
}

package reports

import (
	"testing"

	"budgetbook/internal/core"
)

func testCategories() []core.Category {
	return []core.Category{
		{ID: "cat-1", Name: "Salary", Type: core.Income, Color: "#0EA5E9"},
		{ID: "cat-5", Name: "Rent", Type: core.Expense, Color: "#F97316", Budget: core.Money{Cents: 120000}},
		{ID: "cat-6", Name: "Utilities", Type: core.Expense, Color: "#F59E0B", Budget: core.Money{Cents: 20000}},
	}
}

func TestMonthSummaryMay2025(t *testing.T) {
	txs := []core.Transaction{
		{ID: "a", Amount: core.Money{Cents: 350000}, Type: core.Income, CategoryID: "cat-1", Date: core.NewDate(2025, 5, 1)},
		{ID: "b", Amount: core.Money{Cents: 120000}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 5)},
		{ID: "c", Amount: core.Money{Cents: 8500}, Type: core.Expense, CategoryID: "cat-6", Date: core.NewDate(2025, 5, 6)},
	}

	s := MonthSummary(txs, testCategories(), 2025, 5)
	if s.Income.Cents != 350000 {
		t.Fatalf("income: got %d, want 350000", s.Income.Cents)
	}
	if s.Expenses.Cents != 128500 {
		t.Fatalf("expenses: got %d, want 128500", s.Expenses.Cents)
	}
	if s.Balance.Cents != 221500 {
		t.Fatalf("balance: got %d, want 221500", s.Balance.Cents)
	}
	if len(s.Categories) != 2 {
		t.Fatalf("breakdown entries: got %d, want 2", len(s.Categories))
	}
	if s.Categories[0].Name != "Rent" || s.Categories[1].Name != "Utilities" {
		t.Fatalf("breakdown not sorted descending: %+v", s.Categories)
	}
}

func TestMonthSummaryExcludesOtherMonths(t *testing.T) {
	txs := []core.Transaction{
		{ID: "a", Amount: core.Money{Cents: 100}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 4, 30)},
		{ID: "b", Amount: core.Money{Cents: 200}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 1)},
		{ID: "c", Amount: core.Money{Cents: 400}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 5, 31)},
		{ID: "d", Amount: core.Money{Cents: 800}, Type: core.Expense, CategoryID: "cat-5", Date: core.NewDate(2025, 6, 1)},
	}
	s := MonthSummary(txs, testCategories(), 2025, 5)
	if s.Expenses.Cents != 600 {
		t.Fatalf("expected first and last day inclusive, got %d", s.Expenses.Cents)
	}
}

func TestMonthSummaryUnknownCategoryCountedInTotals(t *testing.T) {
	txs := []core.Transaction{
		{ID: "a", Amount: core.Money{Cents: 500}, Type: core.Expense, CategoryID: "cat-ghost", Date: core.NewDate(2025, 5, 2)},
	}
	s := MonthSummary(txs, testCategories(), 2025, 5)
	if s.Expenses.Cents != 500 {
		t.Fatalf("total must include unknown-category expense, got %d", s.Expenses.Cents)
	}
	if len(s.Categories) != 0 {
		t.Fatalf("breakdown must drop unknown categories, got %+v", s.Categories)
	}
}

func TestMonthSummaryEmpty(t *testing.T) {
	s := MonthSummary(nil, testCategories(), 2025, 5)
	if s.Income.Cents != 0 || s.Expenses.Cents != 0 || s.Balance.Cents != 0 {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	if len(s.Categories) != 0 {
		t.Fatalf("expected empty breakdown")
	}
}

package core

// SeedCategories returns the fixed initial category catalog. Categories are a
// fixed set for the lifetime of the ledger; only their attributes are mutable.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat-1", Name: "Salary", Type: Income, Color: "#0EA5E9"},
		{ID: "cat-2", Name: "Freelance", Type: Income, Color: "#3B82F6"},
		{ID: "cat-3", Name: "Investment", Type: Income, Color: "#10B981"},
		{ID: "cat-4", Name: "Other Income", Type: Income, Color: "#6366F1"},
		{ID: "cat-5", Name: "Rent", Type: Expense, Color: "#F97316", Budget: Money{Cents: 120000}},
		{ID: "cat-6", Name: "Utilities", Type: Expense, Color: "#F59E0B", Budget: Money{Cents: 20000}},
		{ID: "cat-7", Name: "Food", Type: Expense, Color: "#84CC16", Budget: Money{Cents: 50000}},
		{ID: "cat-8", Name: "Transportation", Type: Expense, Color: "#14B8A6", Budget: Money{Cents: 15000}},
		{ID: "cat-9", Name: "Shopping", Type: Expense, Color: "#8B5CF6", Budget: Money{Cents: 30000}},
		{ID: "cat-10", Name: "Entertainment", Type: Expense, Color: "#EC4899", Budget: Money{Cents: 20000}},
		{ID: "cat-11", Name: "Misc", Type: Expense, Color: "#6B7280", Budget: Money{Cents: 10000}},
	}
}

// SeedTransactions returns the demo transactions the ledger starts with.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: "tx-1", Amount: Money{Cents: 350000}, Type: Income, CategoryID: "cat-1", Date: NewDate(2025, 5, 1), Note: "Monthly salary"},
		{ID: "tx-2", Amount: Money{Cents: 80000}, Type: Income, CategoryID: "cat-2", Date: NewDate(2025, 5, 10), Note: "Website project"},
		{ID: "tx-3", Amount: Money{Cents: 120000}, Type: Expense, CategoryID: "cat-5", Date: NewDate(2025, 5, 5), Note: "Monthly rent"},
		{ID: "tx-4", Amount: Money{Cents: 8500}, Type: Expense, CategoryID: "cat-6", Date: NewDate(2025, 5, 6), Note: "Electricity bill"},
		{ID: "tx-5", Amount: Money{Cents: 6500}, Type: Expense, CategoryID: "cat-6", Date: NewDate(2025, 5, 7), Note: "Water bill"},
		{ID: "tx-6", Amount: Money{Cents: 22000}, Type: Expense, CategoryID: "cat-7", Date: NewDate(2025, 5, 8), Note: "Grocery shopping"},
		{ID: "tx-7", Amount: Money{Cents: 6000}, Type: Expense, CategoryID: "cat-8", Date: NewDate(2025, 5, 12), Note: "Gas"},
		{ID: "tx-8", Amount: Money{Cents: 15000}, Type: Expense, CategoryID: "cat-10", Date: NewDate(2025, 5, 15), Note: "Movie and dinner"},
	}
}

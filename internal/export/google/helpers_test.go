package google

import "budgetbook/internal/core"

func validTransaction() core.Transaction {
	return core.Transaction{
		ID:         "tx-1",
		Amount:     core.Money{Cents: 4200},
		Type:       core.Expense,
		CategoryID: "cat-7",
		Date:       core.NewDate(2025, 5, 20),
		Note:       "lunch",
	}
}

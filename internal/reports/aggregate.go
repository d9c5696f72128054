package reports

import "budgetbook/internal/core"

// CategoryTotals aggregates expense transactions whose date lies within
// [start, end] inclusive, grouped by category name and sorted descending by
// sum. Transactions referencing an unknown category id are silently dropped.
func CategoryTotals(txs []core.Transaction, cats []core.Category, start, end core.Date) []CategoryShare {
	byID := categoryIndex(cats)

	var shares []CategoryShare
	pos := map[string]int{}
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		if !tx.Date.InRange(start, end) {
			continue
		}
		cat, ok := byID[tx.CategoryID]
		if !ok {
			continue
		}
		if i, ok := pos[cat.Name]; ok {
			shares[i].Amount.Cents += tx.Amount.Cents
		} else {
			pos[cat.Name] = len(shares)
			shares = append(shares, CategoryShare{Name: cat.Name, Color: cat.Color, Amount: tx.Amount})
		}
	}

	sortSharesDesc(shares)
	return shares
}

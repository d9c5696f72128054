// Package reports computes derived views over ledger state: monthly
// summaries, analytics series, category aggregates, and budget progress.
// Everything here is pure and recomputed per call; callers decide whether to
// cache results.
package reports

import (
	"sort"

	"budgetbook/internal/core"
)

// CategoryShare is an amount aggregated under a category name.
type CategoryShare struct {
	Name   string     `json:"name"`
	Color  string     `json:"color"`
	Amount core.Money `json:"amount"`
}

// Summary holds the totals for one calendar month plus the expense breakdown
// by category, sorted descending by amount.
type Summary struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Income     core.Money      `json:"income"`
	Expenses   core.Money      `json:"expenses"`
	Balance    core.Money      `json:"balance"`
	Categories []CategoryShare `json:"categories"`
}

// MonthSummary totals all transactions whose date falls within the given
// calendar month, inclusive of its first and last day. Expense transactions
// referencing a category id absent from the catalog are counted in the totals
// but dropped from the breakdown.
func MonthSummary(txs []core.Transaction, cats []core.Category, year, month int) Summary {
	s := Summary{Year: year, Month: month}
	byID := categoryIndex(cats)

	var shares []CategoryShare
	pos := map[string]int{}
	for _, tx := range txs {
		if !tx.Date.InMonth(year, month) {
			continue
		}
		switch tx.Type {
		case core.Income:
			s.Income.Cents += tx.Amount.Cents
		case core.Expense:
			s.Expenses.Cents += tx.Amount.Cents
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
	}

	s.Balance.Cents = s.Income.Cents - s.Expenses.Cents
	sortSharesDesc(shares)
	s.Categories = shares
	return s
}

func categoryIndex(cats []core.Category) map[string]core.Category {
	byID := make(map[string]core.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	return byID
}

func sortSharesDesc(shares []CategoryShare) {
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.Cents > shares[j].Amount.Cents
	})
}

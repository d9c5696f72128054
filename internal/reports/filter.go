package reports

import (
	"sort"
	"strings"

	"budgetbook/internal/core"
)

// SortMode orders a transaction listing.
type SortMode string

const (
	SortDateDesc   SortMode = "date-desc"
	SortDateAsc    SortMode = "date-asc"
	SortAmountDesc SortMode = "amount-desc"
	SortAmountAsc  SortMode = "amount-asc"
)

// Filter narrows a transaction listing. Zero values match everything; Query
// searches the note, the category name, and the amount.
type Filter struct {
	Type       core.TransactionType
	CategoryID string
	Query      string
}

// Apply returns the transactions matching the filter, preserving input order.
func (f Filter) Apply(txs []core.Transaction, cats []core.Category) []core.Transaction {
	byID := categoryIndex(cats)
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		if f.CategoryID != "" && tx.CategoryID != f.CategoryID {
			continue
		}
		if query != "" && !matchesQuery(tx, byID, query) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesQuery(tx core.Transaction, byID map[string]core.Category, query string) bool {
	if strings.Contains(strings.ToLower(tx.Note), query) {
		return true
	}
	if cat, ok := byID[tx.CategoryID]; ok && strings.Contains(strings.ToLower(cat.Name), query) {
		return true
	}
	return strings.Contains(tx.Amount.String(), query)
}

// SortTransactions returns a sorted copy. Unknown modes fall back to the
// newest-first default. Sorting is stable so equal keys keep insertion order.
func SortTransactions(txs []core.Transaction, mode SortMode) []core.Transaction {
	out := append([]core.Transaction(nil), txs...)
	switch mode {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	case SortAmountDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.Cents > out[j].Amount.Cents })
	case SortAmountAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.Cents < out[j].Amount.Cents })
	default: // SortDateDesc
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date.Time) })
	}
	return out
}

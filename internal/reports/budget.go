package reports

import (
	"sort"

	"budgetbook/internal/core"
)

// BudgetStatus describes how far a budgeted expense category has been
// consumed.
type BudgetStatus struct {
	CategoryID string     `json:"categoryId"`
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	Budget     core.Money `json:"budget"`
	Spent      core.Money `json:"spent"`
	Progress   float64    `json:"progress"`
}

// BudgetProgress returns the consumed share of a budget as a percentage,
// clamped to 100. A category without a budget yields 0 and is excluded from
// budget views by the callers.
func BudgetProgress(spent, budget core.Money) float64 {
	if budget.Cents <= 0 {
		return 0
	}
	p := float64(spent.Cents) / float64(budget.Cents) * 100
	if p > 100 {
		return 100
	}
	return p
}

// TopBudgetCategories returns the budgeted expense categories ranked by
// spend, truncated to limit (limit <= 0 means no truncation). Spend is the
// all-time sum of expense transactions referencing the category, matching
// the dashboard view this feeds; the monthly summary scopes differently on
// purpose.
func TopBudgetCategories(txs []core.Transaction, cats []core.Category, limit int) []BudgetStatus {
	spent := map[string]int64{}
	for _, tx := range txs {
		if tx.Type == core.Expense {
			spent[tx.CategoryID] += tx.Amount.Cents
		}
	}

	var out []BudgetStatus
	for _, c := range cats {
		if c.Type != core.Expense || c.Budget.Cents <= 0 {
			continue
		}
		s := core.Money{Cents: spent[c.ID]}
		out = append(out, BudgetStatus{
			CategoryID: c.ID,
			Name:       c.Name,
			Color:      c.Color,
			Budget:     c.Budget,
			Spent:      s,
			Progress:   BudgetProgress(s, c.Budget),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Spent.Cents > out[j].Spent.Cents
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

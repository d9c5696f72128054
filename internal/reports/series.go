package reports

import (
	"time"

	"budgetbook/internal/core"
)

// MonthlyTotal is one point of the analytics series.
type MonthlyTotal struct {
	Year     int        `json:"year"`
	Month    int        `json:"month"`
	Label    string     `json:"label"`
	Income   core.Money `json:"income"`
	Expenses core.Money `json:"expenses"`
	Savings  core.Money `json:"savings"`
}

// Lookback windows supported by the analytics view.
const (
	WindowQuarter  = 3
	WindowHalfYear = 6
	WindowYear     = 12
)

// NormalizeWindow clamps a requested lookback to a supported window. Anything
// outside {3, 6, 12} falls back to the six-month default.
func NormalizeWindow(months int) int {
	switch months {
	case WindowQuarter, WindowHalfYear, WindowYear:
		return months
	default:
		return WindowHalfYear
	}
}

// MonthlySeries produces one summary record per month for a lookback window
// ending at (endYear, endMonth), ordered chronologically ascending. Each
// record carries income, expenses, and savings (income minus expenses).
func MonthlySeries(txs []core.Transaction, endYear, endMonth, months int) []MonthlyTotal {
	months = NormalizeWindow(months)

	series := make([]MonthlyTotal, 0, months)
	// Walk from the oldest month of the window forward.
	cursor := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		year, month := cursor.Year(), int(cursor.Month())
		point := MonthlyTotal{
			Year:  year,
			Month: month,
			Label: cursor.Format("Jan 2006"),
		}
		for _, tx := range txs {
			if !tx.Date.InMonth(year, month) {
				continue
			}
			switch tx.Type {
			case core.Income:
				point.Income.Cents += tx.Amount.Cents
			case core.Expense:
				point.Expenses.Cents += tx.Amount.Cents
			}
		}
		point.Savings.Cents = point.Income.Cents - point.Expenses.Cents
		series = append(series, point)
		cursor = cursor.AddDate(0, 1, 0)
	}
	return series
}

// WindowRange returns the inclusive date range covered by a lookback window
// ending at (endYear, endMonth): the first day of the oldest month through
// the last day of the newest.
func WindowRange(endYear, endMonth, months int) (core.Date, core.Date) {
	months = NormalizeWindow(months)
	first := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	last := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	return core.Date{Time: first}, core.Date{Time: last}
}

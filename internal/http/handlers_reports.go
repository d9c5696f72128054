package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"budgetbook/internal/core"
	"budgetbook/internal/reports"
)

type analyticsPayload struct {
	Range      string                  `json:"range"`
	Start      core.Date               `json:"start"`
	End        core.Date               `json:"end"`
	Series     []reports.MonthlyTotal  `json:"series"`
	Categories []reports.CategoryShare `json:"categories"`
}

// parseYearMonth extracts year and month from query parameters, defaulting to
// the current month.
func parseYearMonth(r *http.Request) (year, month int) {
	now := time.Now()
	year = now.Year()
	month = int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}

	return year, month
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)
	key := "summary:" + strconv.Itoa(year) + "-" + strconv.Itoa(month)

	if data, found := s.summaryCache.Get(key); found {
		slog.DebugContext(r.Context(), "Summary cache hit", "year", year, "month", month)
		writeJSON(w, http.StatusOK, data)
		return
	}

	state := s.ledger.Snapshot()
	summary := reports.MonthSummary(state.Transactions, state.Categories, year, month)
	s.summaryCache.Set(key, summary)

	writeJSON(w, http.StatusOK, summary)
}

// windowMonths maps the range query value to a lookback window.
func windowMonths(value string) (int, string) {
	switch value {
	case "3months":
		return reports.WindowQuarter, value
	case "1year":
		return reports.WindowYear, value
	default:
		return reports.WindowHalfYear, "6months"
	}
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	months, rangeName := windowMonths(r.URL.Query().Get("range"))
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	key := "analytics:" + rangeName + ":" + strconv.Itoa(year) + "-" + strconv.Itoa(month)

	if data, found := s.analyticsCache.Get(key); found {
		slog.DebugContext(r.Context(), "Analytics cache hit", "range", rangeName)
		writeJSON(w, http.StatusOK, data)
		return
	}

	state := s.ledger.Snapshot()
	start, end := reports.WindowRange(year, month, months)
	payload := analyticsPayload{
		Range:      rangeName,
		Start:      start,
		End:        end,
		Series:     reports.MonthlySeries(state.Transactions, year, month, months),
		Categories: reports.CategoryTotals(state.Transactions, state.Categories, start, end),
	}
	s.analyticsCache.Set(key, payload)

	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	limit := 4
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}

	state := s.ledger.Snapshot()
	budgets := reports.TopBudgetCategories(state.Transactions, state.Categories, limit)

	writeJSON(w, http.StatusOK, map[string]any{"budgets": budgets})
}

package http

import (
	"net/http"

	"budgetbook/internal/core"
)

// categoryRequest carries the editable category attributes. Budget is a
// decimal string; empty clears the monthly budget.
type categoryRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Color  string `json:"color"`
	Budget string `json:"budget"`
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var budget core.Money
	if req.Budget != "" {
		cents, err := core.ParseDecimalToCents(req.Budget)
		if err != nil {
			writeValidationError(w, core.ErrInvalidAmount)
			return
		}
		budget = core.Money{Cents: cents}
	}

	cat := core.Category{
		ID:     r.PathValue("id"),
		Name:   sanitizeInput(req.Name),
		Type:   core.TransactionType(req.Type),
		Color:  sanitizeInput(req.Color),
		Budget: budget,
	}

	if err := s.ledger.UpdateCategory(cat); err != nil {
		writeValidationError(w, err)
		return
	}

	// The catalog is fixed: unknown ids are silently ignored.
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Category updated successfully",
		"category": cat,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.ledger.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Data reset successfully"})
}

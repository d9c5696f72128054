package http

import (
	"net/http"

	"budgetbook/internal/core"
	"budgetbook/internal/reports"
)

// transactionRequest is the mutation payload. Amount arrives as the decimal
// string the form field holds ("42.50"); it is parsed to cents here at the
// boundary.
type transactionRequest struct {
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	CategoryID string `json:"categoryId"`
	Date       string `json:"date"`
	Note       string `json:"note"`
}

type transactionResponse struct {
	Message     string           `json:"message"`
	Transaction core.Transaction `json:"transaction"`
}

func (s *Server) parseTransaction(req transactionRequest) (core.Transaction, error) {
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.Transaction{}, core.ErrInvalidAmount
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		Amount:     core.Money{Cents: cents},
		Type:       core.TransactionType(req.Type),
		CategoryID: sanitizeInput(req.CategoryID),
		Date:       date,
		Note:       sanitizeInput(req.Note),
	}, nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	state := s.ledger.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": state.Transactions,
		"categories":   state.Categories,
	})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	state := s.ledger.Snapshot()

	q := r.URL.Query()
	filter := reports.Filter{
		Type:       core.TransactionType(q.Get("type")),
		CategoryID: q.Get("category"),
		Query:      q.Get("q"),
	}

	txs := filter.Apply(state.Transactions, state.Categories)
	txs = reports.SortTransactions(txs, reports.SortMode(q.Get("sort")))

	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := s.parseTransaction(req)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	tx, err := s.ledger.AddTransaction(draft)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, transactionResponse{
		Message:     "Transaction added successfully",
		Transaction: tx,
	})
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := s.parseTransaction(req)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	tx.ID = r.PathValue("id")

	if err := s.ledger.UpdateTransaction(tx); err != nil {
		writeValidationError(w, err)
		return
	}

	// Unknown ids are a silent no-op, same answer either way.
	writeJSON(w, http.StatusOK, transactionResponse{
		Message:     "Transaction updated successfully",
		Transaction: tx,
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	s.ledger.DeleteTransaction(r.PathValue("id"))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

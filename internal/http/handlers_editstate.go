package http

import (
	"net/http"
)

// editStateRequest drives the edit-mode state machine. Action is one of
// startAdding, startEditing, or stop; transactionId is required for
// startEditing.
type editStateRequest struct {
	Action        string `json:"action"`
	TransactionID string `json:"transactionId"`
}

func (s *Server) handleGetEditState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Edit())
}

func (s *Server) handleSetEditState(w http.ResponseWriter, r *http.Request) {
	var req editStateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "startAdding":
		s.ledger.StartAdding()
	case "startEditing":
		if !s.ledger.StartEditing(req.TransactionID) {
			writeError(w, http.StatusUnprocessableEntity, "unknown transaction id")
			return
		}
	case "stop":
		s.ledger.StopEditing()
	default:
		writeError(w, http.StatusUnprocessableEntity, "unknown action")
		return
	}

	writeJSON(w, http.StatusOK, s.ledger.Edit())
}

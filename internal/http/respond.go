package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"budgetbook/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationError maps core sentinel errors to a 422 with the offending
// field named.
func writeValidationError(w http.ResponseWriter, err error) {
	field := "body"
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		field = "amount"
	case errors.Is(err, core.ErrInvalidDate):
		field = "date"
	case errors.Is(err, core.ErrInvalidType):
		field = "type"
	case errors.Is(err, core.ErrMissingCategory):
		field = "categoryId"
	case errors.Is(err, core.ErrEmptyID):
		field = "id"
	case errors.Is(err, core.ErrEmptyName):
		field = "name"
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
		"error": err.Error(),
		"field": field,
	})
}

// decodeJSON reads the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

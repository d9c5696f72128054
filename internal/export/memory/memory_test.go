package memory

import (
	"context"
	"testing"

	"budgetbook/internal/core"
)

func TestAppendAndRows(t *testing.T) {
	store := New()
	tx := core.Transaction{
		ID:         "tx-1",
		Amount:     core.Money{Cents: 4200},
		Type:       core.Expense,
		CategoryID: "cat-7",
		Date:       core.NewDate(2025, 5, 20),
	}

	ref, err := store.Append(context.Background(), "created", tx)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ref != "mem:1" {
		t.Fatalf("ref: got %q", ref)
	}

	rows := store.Rows()
	if len(rows) != 1 || rows[0].Action != "created" || rows[0].Transaction.ID != "tx-1" {
		t.Fatalf("rows: %+v", rows)
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	store := New()
	if _, err := store.Append(context.Background(), "created", core.Transaction{}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(store.Rows()) != 0 {
		t.Fatal("invalid row stored")
	}
}

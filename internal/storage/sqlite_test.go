package storage

import (
	"context"
	"path/filepath"
	"testing"

	"budgetbook/internal/core"
)

func newTestStore(t *testing.T) *SQLiteSessionStore {
	t.Helper()
	store, err := NewSQLiteSessionStore(filepath.Join(t.TempDir(), "budgetbook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, ok, err := store.Load(ctx); ok || err != nil {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	user := core.User{ID: "user-1", Email: "demo@example.com", Name: "Demo User"}
	if err := store.Save(ctx, user); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != user {
		t.Fatalf("got %+v, want %+v", got, user)
	}

	if err := store.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Load(ctx); ok {
		t.Fatal("session survived delete")
	}
}

func TestSQLiteSessionSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Save(ctx, core.User{ID: "user-1", Email: "a@b.com", Name: "A"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, core.User{ID: "user-2", Email: "c@d.com", Name: "C"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, ok, _ := store.Load(ctx)
	if !ok || got.ID != "user-2" {
		t.Fatalf("expected latest session, got %+v ok=%v", got, ok)
	}
}

func TestSQLiteSessionDiscardsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO sessions (key, value) VALUES (?, ?)`, SessionKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	if _, ok, err := store.Load(ctx); ok || err != nil {
		t.Fatalf("corrupt record must read as logged out: ok=%v err=%v", ok, err)
	}

	// Row is gone, not just ignored.
	var count int
	if err := store.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE key = ?`, SessionKey).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("corrupt row not deleted: %d rows", count)
	}
}

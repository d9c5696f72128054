// Package storage persists the session record in SQLite. The record mirrors
// the browser-local storage entry of the original client: a single key holding
// the logged-in user as JSON.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"budgetbook/internal/core"
	applog "budgetbook/internal/log"

	_ "modernc.org/sqlite"
)

// SessionKey is the row key under which the session is stored.
const SessionKey = "budget_tracker_user"

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(dbPath string) (*SQLiteSessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteSessionStore{db: db}, nil
}

func (s *SQLiteSessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, u core.User) error {
	value, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		SessionKey, string(value))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	slog.DebugContext(ctx, "Session saved", applog.FieldUserID, u.ID)
	return nil
}

// Load returns the stored user. A record that fails to decode is deleted and
// reported as "no session" so a bad value never wedges the login state.
func (s *SQLiteSessionStore) Load(ctx context.Context) (core.User, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM sessions WHERE key = ?`, SessionKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, false, nil
	}
	if err != nil {
		return core.User{}, false, fmt.Errorf("load session: %w", err)
	}

	var u core.User
	if err := json.Unmarshal([]byte(value), &u); err != nil {
		slog.WarnContext(ctx, "Discarding corrupted session record", applog.FieldError, err)
		if delErr := s.Delete(ctx); delErr != nil {
			return core.User{}, false, delErr
		}
		return core.User{}, false, nil
	}

	return u, true, nil
}

func (s *SQLiteSessionStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE key = ?`, SessionKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

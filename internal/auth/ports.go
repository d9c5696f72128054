package auth

import (
	"context"

	"budgetbook/internal/core"
)

// SessionStore persists the single user-session record. Load reports ok=false
// when no session exists or the stored record could not be decoded; decode
// failures discard the record rather than surfacing an error.
type SessionStore interface {
	Save(ctx context.Context, u core.User) error
	Load(ctx context.Context) (u core.User, ok bool, err error)
	Delete(ctx context.Context) error
}

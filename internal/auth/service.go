// Package auth implements the mock session authentication: a fixed demo
// credential pair, a simulated network delay, and a persisted session record.
// This is not a real credential system.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"budgetbook/internal/core"
)

// The only credential pair the mock login accepts.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"

	demoUserID   = "user-1"
	demoUserName = "Demo User"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("name, email, and password are required")
)

type Service struct {
	sessions SessionStore
	delay    time.Duration
}

// New creates the auth service. delay simulates the latency of a real
// authentication API on login and signup.
func New(sessions SessionStore, delay time.Duration) *Service {
	return &Service{sessions: sessions, delay: delay}
}

// Login authenticates the demo credentials after the simulated delay and
// persists the session on success.
func (s *Service) Login(ctx context.Context, email, password string) (core.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return core.User{}, err
	}

	email = strings.TrimSpace(email)
	if email != DemoEmail || password != DemoPassword {
		return core.User{}, ErrInvalidCredentials
	}

	user := core.User{ID: demoUserID, Email: email, Name: demoUserName}
	if err := s.sessions.Save(ctx, user); err != nil {
		return core.User{}, err
	}
	slog.InfoContext(ctx, "Login successful", "user_id", user.ID)
	return user, nil
}

// Signup creates a fresh user after the simulated delay and persists the
// session. Any non-empty name/email/password is accepted.
func (s *Service) Signup(ctx context.Context, name, email, password string) (core.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return core.User{}, ErrMissingFields
	}

	if err := s.simulateLatency(ctx); err != nil {
		return core.User{}, err
	}

	user := core.User{ID: "user-" + uuid.NewString(), Email: email, Name: name}
	if err := s.sessions.Save(ctx, user); err != nil {
		return core.User{}, err
	}
	slog.InfoContext(ctx, "Account created", "user_id", user.ID)
	return user, nil
}

// Logout deletes the stored session. Logging out without a session is fine.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Delete(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Logged out")
	return nil
}

// Current returns the logged-in user, if any. A corrupted session record has
// already been discarded by the store and reads as "not logged in".
func (s *Service) Current(ctx context.Context) (core.User, bool, error) {
	return s.sessions.Load(ctx)
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

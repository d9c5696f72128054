package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgetbook/internal/core"
)

type fakeSessionStore struct {
	user    core.User
	ok      bool
	saveErr error
	deleted bool
}

func (f *fakeSessionStore) Save(ctx context.Context, u core.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.user = u
	f.ok = true
	return nil
}

func (f *fakeSessionStore) Load(ctx context.Context) (core.User, bool, error) {
	return f.user, f.ok, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context) error {
	f.user = core.User{}
	f.ok = false
	f.deleted = true
	return nil
}

func TestLoginDemoCredentials(t *testing.T) {
	store := &fakeSessionStore{}
	svc := New(store, 0)

	user, err := svc.Login(context.Background(), DemoEmail, DemoPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != "user-1" || user.Name != "Demo User" || user.Email != DemoEmail {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !store.ok || store.user.ID != "user-1" {
		t.Fatalf("session not saved: %+v", store)
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	cases := []struct {
		name, email, password string
	}{
		{"wrong password", DemoEmail, "hunter2"},
		{"wrong email", "someone@example.com", DemoPassword},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeSessionStore{}
			svc := New(store, 0)
			_, err := svc.Login(context.Background(), tc.email, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("got %v, want ErrInvalidCredentials", err)
			}
			if store.ok {
				t.Fatal("session saved on failed login")
			}
		})
	}
}

func TestLoginHonorsContextDuringDelay(t *testing.T) {
	svc := New(&fakeSessionStore{}, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Login(ctx, DemoEmail, DemoPassword)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context deadline", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("login did not return promptly on cancellation")
	}
}

func TestSignupCreatesUser(t *testing.T) {
	store := &fakeSessionStore{}
	svc := New(store, 0)

	user, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.Name != "Ada" || user.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.ID == "" || user.ID == "user-1" {
		t.Fatalf("expected a generated id, got %q", user.ID)
	}
	if !store.ok {
		t.Fatal("session not saved")
	}

	other, err := svc.Signup(context.Background(), "Bea", "bea@example.com", "secret")
	if err != nil {
		t.Fatalf("second signup failed: %v", err)
	}
	if other.ID == user.ID {
		t.Fatal("signup ids must be unique")
	}
}

func TestSignupRequiresAllFields(t *testing.T) {
	svc := New(&fakeSessionStore{}, 0)
	cases := []struct{ name, email, password string }{
		{"", "a@b.com", "x"},
		{"Ada", "", "x"},
		{"Ada", "a@b.com", ""},
		{"  ", "a@b.com", "x"},
	}
	for _, tc := range cases {
		if _, err := svc.Signup(context.Background(), tc.name, tc.email, tc.password); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("signup(%q,%q,%q): got %v, want ErrMissingFields", tc.name, tc.email, tc.password, err)
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := &fakeSessionStore{user: core.User{ID: "user-1"}, ok: true}
	svc := New(store, 0)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if !store.deleted {
		t.Fatal("session not deleted")
	}
	if _, ok, _ := svc.Current(context.Background()); ok {
		t.Fatal("still logged in after logout")
	}
}

func TestCurrentReflectsStore(t *testing.T) {
	store := &fakeSessionStore{}
	svc := New(store, 0)

	if _, ok, err := svc.Current(context.Background()); ok || err != nil {
		t.Fatalf("expected logged out, got ok=%v err=%v", ok, err)
	}

	store.user = core.User{ID: "user-1", Email: DemoEmail, Name: "Demo User"}
	store.ok = true
	user, ok, err := svc.Current(context.Background())
	if err != nil || !ok || user.ID != "user-1" {
		t.Fatalf("expected demo user, got %+v ok=%v err=%v", user, ok, err)
	}
}

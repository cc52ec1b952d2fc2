package usermock

import (
	"context"
	"errors"
	"testing"

	"admission-backend/internal/domain/user"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	u := &user.User{ID: "u1", Email: "a@x.io"}

	wantErr := errors.New("boom")
	called := false
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *user.User) error {
			called = true
			if gotCtx != ctx || got != u {
				t.Fatalf("args not forwarded")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, u); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op
	if err := (&Repo{}).Create(ctx, u); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByEmail(t *testing.T) {
	ctx := context.Background()
	want := &user.User{ID: "u2", Email: "b@x.io"}
	m := &Repo{
		GetByEmailFn: func(_ context.Context, email string) (*user.User, error) {
			if email != "b@x.io" {
				t.Fatalf("email mismatch: %s", email)
			}
			return want, nil
		},
	}
	got, err := m.GetByEmail(ctx, "b@x.io")
	if err != nil || got != want {
		t.Fatalf("GetByEmail = %+v, %v", got, err)
	}

	// Default (nil func) → context.Canceled
	got, err = (&Repo{}).GetByEmail(ctx, "x")
	if err != context.Canceled || got != nil {
		t.Fatalf("GetByEmail default = %+v, %v", got, err)
	}
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if _, err := m.GetByID(ctx, "x"); err != context.Canceled {
		t.Fatalf("GetByID default: %v", err)
	}
	if _, err := m.ListByRole(ctx, user.RoleVerifier); err != context.Canceled {
		t.Fatalf("ListByRole default: %v", err)
	}
}

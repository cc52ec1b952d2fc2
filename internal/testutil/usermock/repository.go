package usermock

import (
	"context"

	"admission-backend/internal/domain/user"
)

var _ user.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies user.Repository.
// Create defaults to a no-op; lookups default to context.Canceled.
type Repo struct {
	CreateFn     func(ctx context.Context, u *user.User) error
	GetByIDFn    func(ctx context.Context, id string) (*user.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
	ListByRoleFn func(ctx context.Context, role user.Role) ([]user.User, error)
}

func (m *Repo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, context.Canceled
}

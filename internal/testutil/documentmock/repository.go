package documentmock

import (
	"context"

	"admission-backend/internal/domain/document"
)

var _ document.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies document.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, d *document.Document) error
	GetByIDFn            func(ctx context.Context, id string) (*document.Document, error)
	CountByProfileFn     func(ctx context.Context, profileID string) (int64, error)
	ListByProfileFn      func(ctx context.Context, profileID string) ([]document.Document, error)
	ListByIDsFn          func(ctx context.Context, profileID string, ids []string) ([]document.Document, error)
	UpdateVerificationFn func(ctx context.Context, ids []string, v document.Verification) error
}

func (m *Repo) Create(ctx context.Context, d *document.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*document.Document, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByProfile(ctx context.Context, profileID string) (int64, error) {
	if m.CountByProfileFn != nil {
		return m.CountByProfileFn(ctx, profileID)
	}
	return 0, context.Canceled
}

func (m *Repo) ListByProfile(ctx context.Context, profileID string) ([]document.Document, error) {
	if m.ListByProfileFn != nil {
		return m.ListByProfileFn(ctx, profileID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByIDs(ctx context.Context, profileID string, ids []string) ([]document.Document, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, profileID, ids)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateVerification(ctx context.Context, ids []string, v document.Verification) error {
	if m.UpdateVerificationFn != nil {
		return m.UpdateVerificationFn(ctx, ids, v)
	}
	return nil
}

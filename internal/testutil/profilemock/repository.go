package profilemock

import (
	"context"

	"admission-backend/internal/domain/profile"
)

var _ profile.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies profile.Repository.
// Writes default to a no-op; reads default to context.Canceled.
type Repo struct {
	CreateFn            func(ctx context.Context, p *profile.Profile) error
	GetByIDFn           func(ctx context.Context, id string) (*profile.Profile, error)
	GetByUserIDFn       func(ctx context.Context, userID string) (*profile.Profile, error)
	GetDetailFn         func(ctx context.Context, id string) (*profile.Profile, error)
	GetDetailByUserIDFn func(ctx context.Context, userID string) (*profile.Profile, error)
	ListFn              func(ctx context.Context, f profile.ListFilter) ([]profile.Profile, error)
	CountByStatusFn     func(ctx context.Context) (map[profile.Status]int64, error)
	UpdateDetailsFn     func(ctx context.Context, id string, d profile.Details) error
	UpdateStatusFn      func(ctx context.Context, id string, s profile.Status) error
	SetVerifierFn       func(ctx context.Context, id, verifierID string) error
}

func (m *Repo) Create(ctx context.Context, p *profile.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetDetail(ctx context.Context, id string) (*profile.Profile, error) {
	if m.GetDetailFn != nil {
		return m.GetDetailFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetDetailByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	if m.GetDetailByUserIDFn != nil {
		return m.GetDetailByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f profile.ListFilter) ([]profile.Profile, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByStatus(ctx context.Context) (map[profile.Status]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateDetails(ctx context.Context, id string, d profile.Details) error {
	if m.UpdateDetailsFn != nil {
		return m.UpdateDetailsFn(ctx, id, d)
	}
	return nil
}

func (m *Repo) UpdateStatus(ctx context.Context, id string, s profile.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, s)
	}
	return nil
}

func (m *Repo) SetVerifier(ctx context.Context, id, verifierID string) error {
	if m.SetVerifierFn != nil {
		return m.SetVerifierFn(ctx, id, verifierID)
	}
	return nil
}

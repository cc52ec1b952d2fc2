package uow

import (
	"context"

	"admission-backend/internal/domain/audit"
	"admission-backend/internal/domain/document"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/domain/user"
)

// Repos are bound to the same transaction inside WithinTx.
type Repos struct {
	Users     user.Repository
	Profiles  profile.Repository
	Documents document.Repository
	Audits    audit.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

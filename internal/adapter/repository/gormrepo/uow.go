package gormrepo

import (
	"context"

	"admission-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

// Repos returns repositories bound to the non-transactional handle.
func (u *GormUoW) Repos() uow.Repos { return reposFor(u.db) }

func reposFor(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:     &UserRepository{db: db},
		Profiles:  &ProfileRepository{db: db},
		Documents: &DocumentRepository{db: db},
		Audits:    &AuditRepository{db: db},
	}
}

package gormrepo

import (
	"context"

	profileDomain "admission-backend/internal/domain/profile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) Create(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) GetDetail(ctx context.Context, id string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.withDetail(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) GetDetailByUserID(ctx context.Context, userID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.withDetail(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) withDetail(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Verifier").
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC, id ASC")
		}).
		Preload("Documents.VerifiedBy")
}

func (r *ProfileRepository) List(ctx context.Context, f profileDomain.ListFilter) ([]profileDomain.Profile, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Verifier").
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC, id ASC")
		})
	if f.VerifierID != nil {
		q = q.Where("verifier_id = ?", *f.VerifierID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var out []profileDomain.Profile
	res := q.Order("created_at ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *ProfileRepository) CountByStatus(ctx context.Context) (map[profileDomain.Status]int64, error) {
	var rows []struct {
		Status profileDomain.Status
		N      int64
	}
	res := r.db.WithContext(ctx).
		Model(&profileDomain.Profile{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	out := make(map[profileDomain.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *ProfileRepository) UpdateDetails(ctx context.Context, id string, d profileDomain.Details) error {
	return r.update(ctx, id, func(db *gorm.DB) *gorm.DB {
		return db.Select(profileDomain.DetailColumns).Updates(&profileDomain.Profile{Details: d})
	})
}

func (r *ProfileRepository) UpdateStatus(ctx context.Context, id string, s profileDomain.Status) error {
	return r.update(ctx, id, func(db *gorm.DB) *gorm.DB {
		return db.Update("status", s)
	})
}

func (r *ProfileRepository) SetVerifier(ctx context.Context, id, verifierID string) error {
	return r.update(ctx, id, func(db *gorm.DB) *gorm.DB {
		return db.Update("verifier_id", verifierID)
	})
}

// update runs fn against the profile row and reports a missing row as
// gorm.ErrRecordNotFound. RowsAffected is not used for that: MySQL reports
// 0 for an update that leaves the row unchanged.
func (r *ProfileRepository) update(ctx context.Context, id string, fn func(db *gorm.DB) *gorm.DB) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&profileDomain.Profile{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return fn(r.db.WithContext(ctx).Model(&profileDomain.Profile{}).Where("id = ?", id)).Error
}

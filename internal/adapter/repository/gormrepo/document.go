package gormrepo

import (
	"context"

	documentDomain "admission-backend/internal/domain/document"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*documentDomain.Document, error) {
	var out documentDomain.Document
	res := r.db.WithContext(ctx).Preload("VerifiedBy").Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) CountByProfile(ctx context.Context, profileID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&documentDomain.Document{}).Where("profile_id = ?", profileID).Count(&n)
	return n, res.Error
}

func (r *DocumentRepository) ListByProfile(ctx context.Context, profileID string) ([]documentDomain.Document, error) {
	var out []documentDomain.Document
	res := r.db.WithContext(ctx).
		Preload("VerifiedBy").
		Where("profile_id = ?", profileID).
		Order("uploaded_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) ListByIDs(ctx context.Context, profileID string, ids []string) ([]documentDomain.Document, error) {
	out := []documentDomain.Document{}
	if len(ids) == 0 {
		return out, nil
	}
	res := r.db.WithContext(ctx).
		Preload("VerifiedBy").
		Where("profile_id = ? AND id IN ?", profileID, ids).
		Order("uploaded_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) UpdateVerification(ctx context.Context, ids []string, v documentDomain.Verification) error {
	if len(ids) == 0 {
		return nil
	}
	cols := map[string]any{
		"status":         v.Status,
		"verified_by_id": v.VerifiedByID,
	}
	if v.Remark != nil {
		cols["remark"] = *v.Remark
	}
	return r.db.WithContext(ctx).
		Model(&documentDomain.Document{}).
		Where("id IN ?", ids).
		Updates(cols).Error
}

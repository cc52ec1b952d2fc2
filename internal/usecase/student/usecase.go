package student

import (
	"context"
	"errors"
	"strings"
	"time"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/audit"
	"admission-backend/internal/domain/document"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/domain/uow"
	"admission-backend/internal/domain/user"
	"admission-backend/internal/usecase/notify"
	"admission-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgNoProfile = "Student profile not found"

type Usecase struct {
	profiles  profile.Repository
	documents document.Repository
	uow       uow.UnitOfWork
	store     FileStore
	notify    *notify.Notifier
	maxUpload int64
}

func NewUsecase(profiles profile.Repository, documents document.Repository, tx uow.UnitOfWork, store FileStore, n *notify.Notifier, maxUpload int64) *Usecase {
	return &Usecase{profiles: profiles, documents: documents, uow: tx, store: store, notify: n, maxUpload: maxUpload}
}

func (u *Usecase) ownProfile(ctx context.Context, caller user.Caller) (*profile.Profile, error) {
	if err := user.RequireRole(caller, user.RoleStudent); err != nil {
		return nil, err
	}
	p, err := u.profiles.GetByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgNoProfile)
		}
		return nil, err
	}
	return p, nil
}

func (u *Usecase) CreateProfile(ctx context.Context, caller user.Caller, in ProfileInput) (*profile.Profile, error) {
	if err := user.RequireRole(caller, user.RoleStudent); err != nil {
		return nil, err
	}
	p := &profile.Profile{ID: id.NewID32(), UserID: caller.ID, Status: profile.StatusDraft}
	if err := in.applyTo(&p.Details); err != nil {
		return nil, err
	}

	switch _, err := u.profiles.GetByUserID(ctx, caller.ID); {
	case err == nil:
		return nil, apperr.Conflict("Profile already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	if err := u.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Profile already exists")
		}
		return nil, err
	}
	u.notify.Logger().Info("profile created", zap.String("profile_id", p.ID), zap.String("user_id", caller.ID))
	return p, nil
}

// GetProfile returns the caller's profile with documents and the per-type
// projections.
func (u *Usecase) GetProfile(ctx context.Context, caller user.Caller) (*profile.View, error) {
	if err := user.RequireRole(caller, user.RoleStudent); err != nil {
		return nil, err
	}
	p, err := u.profiles.GetDetailByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgNoProfile)
		}
		return nil, err
	}
	return profile.NewView(p), nil
}

// UpdateProfile edits personal details while the application is still a
// DRAFT. Status and verifier are never touched here.
func (u *Usecase) UpdateProfile(ctx context.Context, caller user.Caller, in ProfileInput) (*profile.Profile, error) {
	p, err := u.ownProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	if p.Status != profile.StatusDraft {
		return nil, apperr.Conflict("Profile can no longer be edited after submission")
	}
	d := p.Details
	if err := in.applyTo(&d); err != nil {
		return nil, err
	}
	if err := u.profiles.UpdateDetails(ctx, p.ID, d); err != nil {
		return nil, err
	}
	p.Details = d
	return p, nil
}

// UploadDocument stores the file, then records a fresh PENDING document.
// Earlier uploads of the same type are kept as they are.
func (u *Usecase) UploadDocument(ctx context.Context, caller user.Caller, in UploadInput) (*document.Document, error) {
	if err := user.RequireRole(caller, user.RoleStudent); err != nil {
		return nil, err
	}
	in.Type = strings.TrimSpace(in.Type)
	if in.Type == "" {
		return nil, apperr.Validation("Document type is required")
	}
	if in.Body == nil {
		return nil, apperr.Validation("No file uploaded")
	}
	if err := checkFile(in.FileName, in.ContentType, in.Size, u.maxUpload); err != nil {
		return nil, err
	}
	p, err := u.ownProfile(ctx, caller)
	if err != nil {
		return nil, err
	}

	url, err := u.store.Save(ctx, in.FileName, in.ContentType, in.Body)
	if err != nil {
		return nil, err
	}
	d := &document.Document{
		ID:            id.NewID32(),
		ProfileID:     p.ID,
		Type:          in.Type,
		Status:        document.StatusPending,
		TransactionID: in.TransactionID,
		Amount:        in.Amount,
		FileURL:       url,
		UploadedAt:    time.Now().UTC(),
	}
	if err := u.documents.Create(ctx, d); err != nil {
		if derr := u.store.Delete(context.WithoutCancel(ctx), url); derr != nil {
			u.notify.Logger().Warn("orphan upload not removed", zap.String("url", url), zap.Error(derr))
		}
		return nil, err
	}
	u.notify.Metrics().Upload(d.Type)
	return d, nil
}

func (u *Usecase) SubmitApplication(ctx context.Context, caller user.Caller) (*profile.Profile, error) {
	if err := user.RequireRole(caller, user.RoleStudent); err != nil {
		return nil, err
	}
	p, entry, err := AdvanceToSubmitted(ctx, u.uow, caller.ID, audit.ActionApplicationSubmitted, "Profile not found")
	if err != nil {
		return nil, err
	}
	u.notify.Committed(ctx, entry)
	return p, nil
}

// AdvanceToSubmitted moves the profile owned by userID from DRAFT to
// SUBMITTED together with an audit entry tagged action. Past DRAFT it is a
// no-op and the returned entry is nil.
func AdvanceToSubmitted(ctx context.Context, tx uow.UnitOfWork, userID, action, notFoundMsg string) (*profile.Profile, *audit.Entry, error) {
	var (
		out   *profile.Profile
		entry *audit.Entry
	)
	err := tx.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Profiles.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(notFoundMsg)
			}
			return err
		}
		n, err := r.Documents.CountByProfile(ctx, p.ID)
		if err != nil {
			return err
		}
		changed, err := p.Submit(n)
		if err != nil {
			return err
		}
		out = p
		if !changed {
			return nil
		}
		if err := r.Profiles.UpdateStatus(ctx, p.ID, p.Status); err != nil {
			return err
		}
		e := audit.NewEntry(action, userID, p.ID)
		if err := r.Audits.Append(ctx, e); err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, entry, nil
}

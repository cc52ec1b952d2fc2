package verification

import (
	"context"
	"errors"
	"strings"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/audit"
	"admission-backend/internal/domain/document"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/domain/uow"
	"admission-backend/internal/domain/user"
	"admission-backend/internal/usecase/notify"

	"gorm.io/gorm"
)

const (
	msgNoStudent  = "Student not found"
	msgNoDocument = "Document not found"
)

type Usecase struct {
	profiles  profile.Repository
	documents document.Repository
	uow       uow.UnitOfWork
	notify    *notify.Notifier
}

func NewUsecase(profiles profile.Repository, documents document.Repository, tx uow.UnitOfWork, n *notify.Notifier) *Usecase {
	return &Usecase{profiles: profiles, documents: documents, uow: tx, notify: n}
}

// authorize lets an ADMIN act on any profile and a VERIFIER only on the ones
// assigned to them.
func authorize(caller user.Caller, p *profile.Profile) error {
	if caller.Is(user.RoleVerifier) && !p.AssignedTo(caller.ID) {
		return apperr.Forbidden("Student is not assigned to you")
	}
	return nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}

// ListProfiles returns every profile for an ADMIN and only the assigned ones
// for a VERIFIER, optionally narrowed to one status.
func (u *Usecase) ListProfiles(ctx context.Context, caller user.Caller, status string) ([]profile.Profile, error) {
	if err := user.RequireRole(caller, user.RoleVerifier, user.RoleAdmin); err != nil {
		return nil, err
	}
	var f profile.ListFilter
	if caller.Is(user.RoleVerifier) {
		f.VerifierID = &caller.ID
	}
	if status != "" {
		s := profile.Status(strings.ToUpper(status))
		if !s.Valid() {
			return nil, apperr.Validation("status must be one of DRAFT, SUBMITTED, APPROVED, REJECTED")
		}
		f.Status = &s
	}
	return u.profiles.List(ctx, f)
}

func (u *Usecase) GetProfile(ctx context.Context, caller user.Caller, profileID string) (*profile.View, error) {
	if err := user.RequireRole(caller, user.RoleVerifier, user.RoleAdmin); err != nil {
		return nil, err
	}
	p, err := u.profiles.GetDetail(ctx, profileID)
	if err != nil {
		return nil, notFound(err, msgNoStudent)
	}
	if err := authorize(caller, p); err != nil {
		return nil, err
	}
	return profile.NewView(p), nil
}

// SetDocumentStatus records a verdict on one document. It is deliberately not
// audited; bulk approvals are.
func (u *Usecase) SetDocumentStatus(ctx context.Context, caller user.Caller, documentID string, in VerifyInput) (*document.Document, error) {
	if err := user.RequireRole(caller, user.RoleVerifier, user.RoleAdmin); err != nil {
		return nil, err
	}
	if !in.Status.Valid() {
		return nil, apperr.Validation("status must be one of PENDING, APPROVED, REJECTED")
	}
	d, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, notFound(err, msgNoDocument)
	}
	if caller.Is(user.RoleVerifier) {
		p, err := u.profiles.GetByID(ctx, d.ProfileID)
		if err != nil {
			return nil, notFound(err, msgNoStudent)
		}
		if err := authorize(caller, p); err != nil {
			return nil, err
		}
	}
	v := document.Verification{Status: in.Status, Remark: in.Remark, VerifiedByID: caller.ID}
	if err := u.documents.UpdateVerification(ctx, []string{d.ID}, v); err != nil {
		return nil, err
	}
	out, err := u.documents.GetByID(ctx, d.ID)
	if err != nil {
		return nil, notFound(err, msgNoDocument)
	}
	return out, nil
}

// ApproveDocuments approves every document of the profile or the selected
// ones that actually belong to it; foreign ids are dropped silently. One
// audit entry is written per call.
func (u *Usecase) ApproveDocuments(ctx context.Context, caller user.Caller, profileID string, in BulkInput) (*BulkResult, error) {
	if err := user.RequireRole(caller, user.RoleVerifier, user.RoleAdmin); err != nil {
		return nil, err
	}
	requested := dedupe(in.DocumentIDs)
	if !in.All && len(requested) == 0 {
		return nil, apperr.Validation("documentIds must be a non-empty array")
	}

	var (
		res   BulkResult
		entry *audit.Entry
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Profiles.GetByID(ctx, profileID)
		if err != nil {
			return notFound(err, msgNoStudent)
		}
		if err := authorize(caller, p); err != nil {
			return err
		}

		var docs []document.Document
		if in.All {
			docs, err = r.Documents.ListByProfile(ctx, p.ID)
		} else {
			docs, err = r.Documents.ListByIDs(ctx, p.ID, requested)
		}
		if err != nil {
			return err
		}
		ids := affectedIDs(docs, requested, in.All)

		if len(ids) > 0 {
			v := document.Verification{Status: document.StatusApproved, Remark: in.Remark, VerifiedByID: caller.ID}
			if err := r.Documents.UpdateVerification(ctx, ids, v); err != nil {
				return err
			}
		}

		action := audit.ActionBulkDocumentApproval
		if !in.All {
			action = audit.BulkSelectedAction(ids)
		}
		entry = audit.NewEntry(action, caller.ID, p.ID)
		if err := r.Audits.Append(ctx, entry); err != nil {
			return err
		}

		res.Count = len(ids)
		res.Documents = []document.Document{}
		if len(ids) > 0 {
			updated, err := r.Documents.ListByIDs(ctx, p.ID, ids)
			if err != nil {
				return err
			}
			res.Documents = updated
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notify.Committed(ctx, entry)
	return &res, nil
}

// SetFinalDecision overwrites the profile status unconditionally; the last
// decision wins.
func (u *Usecase) SetFinalDecision(ctx context.Context, caller user.Caller, profileID string, decision profile.Decision) (*profile.Profile, error) {
	if err := user.RequireRole(caller, user.RoleVerifier, user.RoleAdmin); err != nil {
		return nil, err
	}
	status, ok := decision.Outcome()
	if !ok {
		return nil, apperr.Validation("decision must be APPROVE or REJECT")
	}

	var (
		out   *profile.Profile
		entry *audit.Entry
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Profiles.GetByID(ctx, profileID)
		if err != nil {
			return notFound(err, msgNoStudent)
		}
		if err := authorize(caller, p); err != nil {
			return err
		}
		if err := r.Profiles.UpdateStatus(ctx, p.ID, status); err != nil {
			return err
		}
		entry = audit.NewEntry(audit.FinalDecisionAction(string(status)), caller.ID, p.ID)
		if err := r.Audits.Append(ctx, entry); err != nil {
			return err
		}
		p.Status = status
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notify.Committed(ctx, entry)
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// affectedIDs keeps request order for a selection and store order for "all".
func affectedIDs(docs []document.Document, requested []string, all bool) []string {
	if all {
		out := make([]string, len(docs))
		for i, d := range docs {
			out[i] = d.ID
		}
		return out
	}
	owned := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		owned[d.ID] = struct{}{}
	}
	out := make([]string, 0, len(docs))
	for _, id := range requested {
		if _, ok := owned[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

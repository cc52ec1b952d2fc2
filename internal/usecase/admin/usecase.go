package admin

import (
	"context"
	"errors"
	"strings"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/audit"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/domain/uow"
	"admission-backend/internal/domain/user"
	"admission-backend/internal/usecase/auth"
	"admission-backend/internal/usecase/notify"
	"admission-backend/pkg/id"

	"gorm.io/gorm"
)

const (
	tempPasswordLen = 8
	msgNoStudent    = "Student not found"
)

type Usecase struct {
	users    user.Repository
	profiles profile.Repository
	uow      uow.UnitOfWork
	hasher   auth.Hasher
	notify   *notify.Notifier
}

func NewUsecase(users user.Repository, profiles profile.Repository, tx uow.UnitOfWork, hasher auth.Hasher, n *notify.Notifier) *Usecase {
	return &Usecase{users: users, profiles: profiles, uow: tx, hasher: hasher, notify: n}
}

func requireAdmin(c user.Caller) error { return user.RequireRole(c, user.RoleAdmin) }

// AssignVerifier sets or replaces the verifier of a profile.
func (u *Usecase) AssignVerifier(ctx context.Context, caller user.Caller, in AssignInput) (*profile.Profile, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	studentID, verifierID := strings.TrimSpace(in.StudentID), strings.TrimSpace(in.VerifierID)
	if studentID == "" || verifierID == "" {
		return nil, apperr.Validation("studentId and verifierId are required")
	}

	var (
		out   *profile.Profile
		entry *audit.Entry
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Profiles.GetByID(ctx, studentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(msgNoStudent)
			}
			return err
		}
		v, err := r.Users.GetByID(ctx, verifierID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperr.Validation("Verifier not found or not a verifier")
		case err != nil:
			return err
		case v.Role != user.RoleVerifier:
			return apperr.Validation("Verifier not found or not a verifier")
		}
		if err := r.Profiles.SetVerifier(ctx, p.ID, v.ID); err != nil {
			return err
		}
		entry = audit.NewEntry(audit.ActionAssignedVerifier, caller.ID, p.ID)
		if err := r.Audits.Append(ctx, entry); err != nil {
			return err
		}
		p.VerifierID = &v.ID
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notify.Committed(ctx, entry)
	return out, nil
}

// CreateVerifier provisions a VERIFIER account. Without a supplied password
// an 8 character temporary one is generated and returned once.
func (u *Usecase) CreateVerifier(ctx context.Context, caller user.Caller, in CreateVerifierInput) (*CreatedVerifierDTO, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	pwd := in.Password
	if pwd == "" {
		pwd = id.NewTempPassword(tempPasswordLen)
	}

	var (
		created *user.User
		entry   *audit.Entry
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		created, err = auth.CreateUser(ctx, r.Users, u.hasher, in.Email, pwd, user.RoleVerifier)
		if err != nil {
			return err
		}
		// the account id goes in student_id; there is no student for this action
		entry = audit.NewEntry(audit.ActionCreatedVerifier, caller.ID, created.ID)
		return r.Audits.Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	u.notify.Committed(ctx, entry)
	return &CreatedVerifierDTO{
		Message:  "Verifier created successfully",
		UserID:   created.ID,
		Email:    created.Email,
		Password: pwd,
	}, nil
}

func (u *Usecase) DashboardStats(ctx context.Context, caller user.Caller) (*StatsDTO, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	counts, err := u.profiles.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	s := &StatsDTO{
		Draft:    counts[profile.StatusDraft],
		Pending:  counts[profile.StatusSubmitted],
		Approved: counts[profile.StatusApproved],
		Rejected: counts[profile.StatusRejected],
	}
	for _, n := range counts {
		s.Total += n
	}
	return s, nil
}

// ListStudents returns every profile with user, verifier and documents.
func (u *Usecase) ListStudents(ctx context.Context, caller user.Caller) ([]profile.Profile, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return u.profiles.List(ctx, profile.ListFilter{})
}

func (u *Usecase) GetStudent(ctx context.Context, caller user.Caller, profileID string) (*profile.View, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	p, err := u.profiles.GetDetail(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgNoStudent)
		}
		return nil, err
	}
	return profile.NewView(p), nil
}

func (u *Usecase) ListVerifiers(ctx context.Context, caller user.Caller) ([]user.Summary, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	vs, err := u.users.ListByRole(ctx, user.RoleVerifier)
	if err != nil {
		return nil, err
	}
	out := make([]user.Summary, len(vs))
	for i, v := range vs {
		out[i] = user.Summary{ID: v.ID, Email: v.Email}
	}
	return out, nil
}

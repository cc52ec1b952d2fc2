package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"admission-backend/internal/adapter/repository/gormrepo"
	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/audit"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/domain/uow"
	"admission-backend/internal/domain/user"
	"admission-backend/internal/infrastructure/password"
	"admission-backend/internal/infrastructure/token"
	"admission-backend/internal/testutil/auditmock"
	"admission-backend/internal/testutil/profilemock"
	"admission-backend/internal/testutil/sqlitedb"
	"admission-backend/internal/testutil/uowmock"
	"admission-backend/internal/testutil/usermock"
	"admission-backend/internal/usecase/auth"
	"admission-backend/internal/usecase/notify"
	"admission-backend/internal/usecase/verification"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	uc     *Usecase
	auth   *auth.Usecase
	verify *verification.Usecase
	admin  user.Caller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := sqlitedb.Open(t)
	hasher := password.NewBcrypt(bcrypt.MinCost)
	n := notify.New(&auditmock.Publisher{}, nil, nil)
	users := gormrepo.NewUserRepository(db)
	profiles := gormrepo.NewProfileRepository(db)
	tx := gormrepo.NewGormUoW(db)
	a := sqlitedb.SeedUser(t, db, "admin@x.io", user.RoleAdmin)
	return &fixture{
		db:     db,
		uc:     NewUsecase(users, profiles, tx, hasher, n),
		auth:   auth.NewUsecase(users, hasher, token.NewJWTIssuer("test", time.Hour), nil),
		verify: verification.NewUsecase(profiles, gormrepo.NewDocumentRepository(db), tx, n),
		admin:  user.Caller{ID: a.ID, Role: user.RoleAdmin},
	}
}

func TestAssignVerifier_ScopesVerifierLists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := sqlitedb.SeedProfile(t, f.db, "s@x.io", profile.StatusSubmitted)
	v := sqlitedb.SeedUser(t, f.db, "v@x.io", user.RoleVerifier)
	other := sqlitedb.SeedUser(t, f.db, "o@x.io", user.RoleVerifier)

	got, err := f.uc.AssignVerifier(ctx, f.admin, AssignInput{StudentID: s.ID, VerifierID: v.ID})
	if err != nil {
		t.Fatalf("AssignVerifier: %v", err)
	}
	if got.VerifierID == nil || *got.VerifierID != v.ID {
		t.Fatalf("profile = %+v", got)
	}
	entries := sqlitedb.Audits(t, f.db, s.ID)
	if len(entries) != 1 || entries[0].Action != audit.ActionAssignedVerifier || entries[0].PerformedBy != f.admin.ID {
		t.Fatalf("audit = %+v", entries)
	}

	mine, err := f.verify.ListProfiles(ctx, user.Caller{ID: v.ID, Role: user.RoleVerifier}, "")
	if err != nil || len(mine) != 1 || mine[0].ID != s.ID {
		t.Fatalf("assigned verifier list = %+v, %v", mine, err)
	}
	theirs, err := f.verify.ListProfiles(ctx, user.Caller{ID: other.ID, Role: user.RoleVerifier}, "")
	if err != nil || len(theirs) != 0 {
		t.Fatalf("other verifier list = %+v, %v", theirs, err)
	}

	// reassignment overwrites
	if _, err := f.uc.AssignVerifier(ctx, f.admin, AssignInput{StudentID: s.ID, VerifierID: other.ID}); err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if p := sqlitedb.Profile(t, f.db, s.ID); p.VerifierID == nil || *p.VerifierID != other.ID {
		t.Fatalf("reassign not stored: %+v", p.VerifierID)
	}
}

func TestAssignVerifier_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := sqlitedb.SeedProfile(t, f.db, "s@x.io", profile.StatusSubmitted)
	v := sqlitedb.SeedUser(t, f.db, "v@x.io", user.RoleVerifier)
	stu := sqlitedb.SeedUser(t, f.db, "s2@x.io", user.RoleStudent)

	cases := []struct {
		name   string
		caller user.Caller
		in     AssignInput
		want   error
		msg    string
	}{
		{"missing ids", f.admin, AssignInput{StudentID: s.ID}, apperr.ErrValidation, "studentId and verifierId are required"},
		{"unknown student", f.admin, AssignInput{StudentID: "nope", VerifierID: v.ID}, apperr.ErrNotFound, "Student not found"},
		{"unknown verifier", f.admin, AssignInput{StudentID: s.ID, VerifierID: "nope"}, apperr.ErrValidation, "Verifier not found or not a verifier"},
		{"target not a verifier", f.admin, AssignInput{StudentID: s.ID, VerifierID: stu.ID}, apperr.ErrValidation, "Verifier not found or not a verifier"},
		{"verifier caller", user.Caller{ID: v.ID, Role: user.RoleVerifier}, AssignInput{StudentID: s.ID, VerifierID: v.ID}, apperr.ErrForbidden, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.AssignVerifier(ctx, tc.caller, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
			if tc.msg != "" && err.Error() != tc.msg {
				t.Fatalf("message = %q, want %q", err.Error(), tc.msg)
			}
		})
	}
	if p := sqlitedb.Profile(t, f.db, s.ID); p.VerifierID != nil {
		t.Fatalf("failed calls assigned a verifier")
	}
	if n := len(sqlitedb.Audits(t, f.db, s.ID)); n != 0 {
		t.Fatalf("failed calls appended audit, rows = %d", n)
	}
}

// Mock-driven: the status update and audit insert share one transaction.
func TestAssignVerifier_UsesSingleTransaction(t *testing.T) {
	calls := 0
	var order []string
	users := &usermock.Repo{GetByIDFn: func(context.Context, string) (*user.User, error) {
		return &user.User{ID: "v1", Role: user.RoleVerifier}, nil
	}}
	profiles := &profilemock.Repo{
		GetByIDFn: func(context.Context, string) (*profile.Profile, error) { return &profile.Profile{ID: "p1"}, nil },
		SetVerifierFn: func(_ context.Context, id, vid string) error {
			order = append(order, "set:"+id+":"+vid)
			return nil
		},
	}
	audits := &auditmock.Repo{AppendFn: func(_ context.Context, e *audit.Entry) error {
		order = append(order, "audit:"+e.Action)
		return nil
	}}
	tx := uowmock.New().WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error {
		calls++
		return fn(uow.Repos{Users: users, Profiles: profiles, Audits: audits})
	})
	uc := NewUsecase(users, profiles, tx, nil, nil)

	if _, err := uc.AssignVerifier(context.Background(), user.Caller{ID: "a", Role: user.RoleAdmin}, AssignInput{StudentID: "p1", VerifierID: "v1"}); err != nil {
		t.Fatalf("AssignVerifier: %v", err)
	}
	if calls != 1 || len(order) != 2 || order[0] != "set:p1:v1" || order[1] != "audit:ASSIGNED_VERIFIER" {
		t.Fatalf("calls=%d order=%v", calls, order)
	}
}

func TestCreateVerifier_GeneratedPasswordLogsIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.CreateVerifier(ctx, f.admin, CreateVerifierInput{Email: "new.verifier@x.io"})
	if err != nil {
		t.Fatalf("CreateVerifier: %v", err)
	}
	if len(out.Password) != 8 {
		t.Fatalf("temporary password = %q", out.Password)
	}
	var stored user.User
	if err := f.db.Where("id = ?", out.UserID).First(&stored).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.Role != user.RoleVerifier || stored.PasswordHash == out.Password {
		t.Fatalf("stored = %+v", stored)
	}
	entries := sqlitedb.Audits(t, f.db, out.UserID)
	if len(entries) != 1 || entries[0].Action != audit.ActionCreatedVerifier {
		t.Fatalf("audit = %+v", entries)
	}

	login, err := f.auth.Login(ctx, auth.LoginInput{Email: "new.verifier@x.io", Password: out.Password})
	if err != nil {
		t.Fatalf("login with returned password: %v", err)
	}
	if login.User.Role != user.RoleVerifier || login.Token == "" {
		t.Fatalf("login = %+v", login)
	}
}

func TestCreateVerifier_SuppliedPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	out, err := f.uc.CreateVerifier(ctx, f.admin, CreateVerifierInput{Email: "v@x.io", Password: "Chosen123"})
	if err != nil {
		t.Fatalf("CreateVerifier: %v", err)
	}
	if out.Password != "Chosen123" {
		t.Fatalf("password = %q", out.Password)
	}
	if _, err := f.auth.Login(ctx, auth.LoginInput{Email: "v@x.io", Password: "Chosen123"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := f.auth.Login(ctx, auth.LoginInput{Email: "v@x.io", Password: "other"}); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("wrong password: want Unauthorized, got %v", err)
	}

	_, err = f.uc.CreateVerifier(ctx, f.admin, CreateVerifierInput{Email: "V@x.io"})
	if !errors.Is(err, apperr.ErrConflict) || err.Error() != "User already exists" {
		t.Fatalf("duplicate: want Conflict, got %v", err)
	}
	if _, err := f.uc.CreateVerifier(ctx, f.admin, CreateVerifierInput{}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("no email: want Validation, got %v", err)
	}
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	sqlitedb.SeedProfile(t, f.db, "a@x.io", profile.StatusDraft)
	sqlitedb.SeedProfile(t, f.db, "b@x.io", profile.StatusSubmitted)
	sqlitedb.SeedProfile(t, f.db, "c@x.io", profile.StatusSubmitted)
	sqlitedb.SeedProfile(t, f.db, "d@x.io", profile.StatusApproved)
	sqlitedb.SeedProfile(t, f.db, "e@x.io", profile.StatusRejected)

	got, err := f.uc.DashboardStats(context.Background(), f.admin)
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	want := StatsDTO{Total: 5, Draft: 1, Pending: 2, Approved: 1, Rejected: 1}
	if *got != want {
		t.Fatalf("stats = %+v, want %+v", *got, want)
	}
}

func TestListingsAndDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := sqlitedb.SeedProfile(t, f.db, "s@x.io", profile.StatusSubmitted)
	sqlitedb.SeedDocument(t, f.db, s.ID, "AADHAR_CARD", time.Now())
	sqlitedb.SeedUser(t, f.db, "v1@x.io", user.RoleVerifier)
	sqlitedb.SeedUser(t, f.db, "v2@x.io", user.RoleVerifier)

	list, err := f.uc.ListStudents(ctx, f.admin)
	if err != nil || len(list) != 1 || len(list[0].Documents) != 1 || list[0].User == nil {
		t.Fatalf("ListStudents = %+v, %v", list, err)
	}
	v, err := f.uc.GetStudent(ctx, f.admin, s.ID)
	if err != nil || len(v.ActiveDocuments) != 1 || len(v.MissingDocuments) != 4 {
		t.Fatalf("GetStudent = %+v, %v", v, err)
	}
	if _, err := f.uc.GetStudent(ctx, f.admin, "nope"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("missing student: want NotFound, got %v", err)
	}
	vs, err := f.uc.ListVerifiers(ctx, f.admin)
	if err != nil || len(vs) != 2 {
		t.Fatalf("ListVerifiers = %+v, %v", vs, err)
	}
	if _, err := f.uc.ListVerifiers(ctx, user.Caller{ID: "x", Role: user.RoleVerifier}); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("verifier caller: want Forbidden, got %v", err)
	}
}

package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/user"
	"admission-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const minPasswordLen = 6

type Usecase struct {
	users  user.Repository
	hasher Hasher
	tokens TokenIssuer
	log    *zap.Logger
}

func NewUsecase(users user.Repository, hasher Hasher, tokens TokenIssuer, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, hasher: hasher, tokens: tokens, log: log}
}

// NormalizeEmail lowercases and trims; it fails on anything that is not a
// bare address.
func NormalizeEmail(raw string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(raw))
	if e == "" {
		return "", apperr.Validation("Email is required")
	}
	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e {
		return "", apperr.Validation("Invalid email address")
	}
	return e, nil
}

// CreateUser stores a new account with role r. Shared by self-registration,
// admin seeding and verifier creation.
func CreateUser(ctx context.Context, users user.Repository, hasher Hasher, email, password string, r user.Role) (*user.User, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLen {
		return nil, apperr.Validation("Password must be at least 6 characters")
	}
	switch _, err := users.GetByEmail(ctx, email); {
	case err == nil:
		return nil, apperr.Conflict("User already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &user.User{ID: id.NewID32(), Email: email, PasswordHash: hash, Role: r}
	if err := users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, err
	}
	return u, nil
}

// Register always creates a STUDENT; other roles are provisioned by an admin.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	created, err := CreateUser(ctx, u.users, u.hasher, in.Email, in.Password, user.RoleStudent)
	if err != nil {
		return nil, err
	}
	u.log.Info("user registered", zap.String("user_id", created.ID))
	dto := toDTO(created)
	return &dto, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginDTO, error) {
	invalid := apperr.Unauthorized("Invalid credentials")

	email := strings.ToLower(strings.TrimSpace(in.Email))
	found, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	ok, err := u.hasher.Compare(found.PasswordHash, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalid
	}
	tok, err := u.tokens.Issue(found.ID, found.Role)
	if err != nil {
		return nil, err
	}
	return &LoginDTO{Token: tok, User: toDTO(found)}, nil
}

// EnsureAdmin seeds an ADMIN account if email is not taken yet.
func (u *Usecase) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}
	created, err := CreateUser(ctx, u.users, u.hasher, email, password, user.RoleAdmin)
	if errors.Is(err, apperr.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	u.log.Info("admin account seeded", zap.String("user_id", created.ID))
	return true, nil
}

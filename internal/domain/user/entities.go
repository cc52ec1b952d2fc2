package user

import (
	"strings"
	"time"

	"admission-backend/internal/domain/apperr"
)

type Role string

const (
	RoleStudent  Role = "STUDENT"
	RoleVerifier Role = "VERIFIER"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleStudent, RoleVerifier, RoleAdmin:
		return r, true
	}
	return "", false
}

// Table: users. Rows are never deleted; audit entries reference them.
type User struct {
	ID           string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role         Role      `gorm:"column:role;type:varchar(16);not null;default:'STUDENT';index" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// Summary is the {id, email} shape nested into profile and document responses.
type Summary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Caller is the authenticated identity a usecase acts on behalf of.
type Caller struct {
	ID   string
	Role Role
}

func (c Caller) Is(r Role) bool { return c.Role == r }

// RequireRole fails with Forbidden unless the caller holds one of allowed.
func RequireRole(c Caller, allowed ...Role) error {
	if c.ID == "" {
		return apperr.Unauthorized("authentication required")
	}
	for _, r := range allowed {
		if c.Role == r {
			return nil
		}
	}
	return apperr.Forbidden("insufficient role for this action")
}

package sqlitedb

import (
	"testing"
	"time"

	"admission-backend/internal/domain/audit"
	"admission-backend/internal/domain/document"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/domain/user"
	"admission-backend/pkg/id"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SeedUser(t testing.TB, db *gorm.DB, email string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{ID: id.NewID32(), Email: email, PasswordHash: "x", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedProfile creates a STUDENT user and its profile in status s.
func SeedProfile(t testing.TB, db *gorm.DB, email string, s profile.Status) *profile.Profile {
	t.Helper()
	u := SeedUser(t, db, email, user.RoleStudent)
	p := &profile.Profile{ID: id.NewID32(), UserID: u.ID, Status: s}
	if err := db.Omit(clause.Associations).Create(p).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedDocument(t testing.TB, db *gorm.DB, profileID, docType string, at time.Time) *document.Document {
	t.Helper()
	d := &document.Document{
		ID:         id.NewID32(),
		ProfileID:  profileID,
		Type:       docType,
		Status:     document.StatusPending,
		FileURL:    "/uploads/" + id.NewID32() + ".pdf",
		UploadedAt: at.UTC(),
	}
	if err := db.Omit(clause.Associations).Create(d).Error; err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return d
}

func Assign(t testing.TB, db *gorm.DB, profileID, verifierID string) {
	t.Helper()
	if err := db.Model(&profile.Profile{}).Where("id = ?", profileID).Update("verifier_id", verifierID).Error; err != nil {
		t.Fatalf("assign verifier: %v", err)
	}
}

// Audits returns every audit entry for studentID in insertion order.
func Audits(t testing.TB, db *gorm.DB, studentID string) []audit.Entry {
	t.Helper()
	var out []audit.Entry
	if err := db.Where("student_id = ?", studentID).Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		t.Fatalf("load audits: %v", err)
	}
	return out
}

func Document(t testing.TB, db *gorm.DB, docID string) *document.Document {
	t.Helper()
	var d document.Document
	if err := db.Where("id = ?", docID).First(&d).Error; err != nil {
		t.Fatalf("load document: %v", err)
	}
	return &d
}

func Profile(t testing.TB, db *gorm.DB, profileID string) *profile.Profile {
	t.Helper()
	var p profile.Profile
	if err := db.Where("id = ?", profileID).First(&p).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return &p
}
